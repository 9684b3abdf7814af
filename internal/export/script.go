package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
)

// scriptTemplate renders the standalone Streamlit dashboard. The selected
// industry's job and skill lists are baked into the script so it runs
// without this service.
var scriptTemplate = template.Must(template.New("streamlit").Parse(`import streamlit as st
import pandas as pd
import numpy as np
import plotly.express as px

# Page configuration
st.set_page_config(
    page_title="AI Job Demand Forecaster",
    page_icon="🚀",
    layout="wide",
    initial_sidebar_state="expanded"
)

st.title("🚀 AI Job Demand Forecaster")
st.markdown("Predict future job trends for the next 2 years with AI-powered insights")

# Exported from the {{.Industry}} / {{.Experience}} analysis
SELECTED_INDUSTRY = {{.IndustryLiteral}}
SELECTED_EXPERIENCE = {{.ExperienceLiteral}}
INDUSTRIES = {{.IndustriesLiteral}}
JOB_TITLES = {{.JobsLiteral}}
SKILLS = {{.SkillsLiteral}}

st.sidebar.header("Configuration")
selected_industry = st.sidebar.selectbox(
    "Select Industry",
    INDUSTRIES,
    index=INDUSTRIES.index(SELECTED_INDUSTRY),
    format_func=lambda x: x.title()
)

experience_levels = [
    ('entry', 'Entry Level (0-2 years)'),
    ('mid', 'Mid Level (3-5 years)'),
    ('senior', 'Senior Level (6-10 years)'),
    ('executive', 'Executive Level (10+ years)')
]
selected_experience = st.sidebar.selectbox(
    "Select Experience Level",
    experience_levels,
    format_func=lambda x: x[1]
)[0]

if st.sidebar.button("Generate Predictions", type="primary"):
    predictions = []
    for job in JOB_TITLES:
        predictions.append({
            'Job Title': job,
            'Current Demand': int(np.random.randint(60, 95)),
            'Predicted Growth (%)': int(np.random.randint(10, 35)),
            'Confidence Score (%)': int(np.random.randint(85, 98)),
        })
    st.session_state.predictions = predictions

if hasattr(st.session_state, 'predictions'):
    st.header(f"📈 Predictions for {selected_industry.title()} Industry")

    df = pd.DataFrame(st.session_state.predictions)
    avg_growth = df['Predicted Growth (%)'].mean()
    avg_confidence = df['Confidence Score (%)'].mean()

    col1, col2, col3 = st.columns(3)
    col1.metric("Average Growth", f"+{avg_growth:.1f}%")
    col2.metric("Average Confidence", f"{avg_confidence:.1f}%")
    col3.metric("Total Jobs Analyzed", len(df))

    st.subheader("📊 Job Demand Analysis")
    st.dataframe(df, use_container_width=True)

    fig = px.bar(
        df,
        x='Job Title',
        y='Predicted Growth (%)',
        color='Current Demand',
        title='Job Demand Growth Forecast',
        color_continuous_scale='viridis'
    )
    fig.update_layout(xaxis_tickangle=-45)
    st.plotly_chart(fig, use_container_width=True)

    st.subheader("🎯 Skills Recommendations")
    for skill in SKILLS:
        st.write(f"**{skill}**")

st.markdown("---")
st.markdown("Built with ❤️ using Streamlit | AI Job Demand Forecaster v1.0")
`))

// scriptData is the template payload. Lists are pre-rendered as Python
// literals (JSON string arrays are valid Python).
type scriptData struct {
	Industry          string
	Experience        string
	IndustryLiteral   string
	ExperienceLiteral string
	IndustriesLiteral string
	JobsLiteral       string
	SkillsLiteral     string
}

// Script generates the Streamlit dashboard source for a run.
func Script(run Run) (string, error) {
	ind, ok := catalog.ParseIndustry(run.Industry)
	if !ok {
		return "", fmt.Errorf("industry %s not supported", run.Industry)
	}
	profile, _ := catalog.Lookup(ind)

	industries := catalog.Industries()
	industryKeys := make([]string, len(industries))
	for i, key := range industries {
		industryKeys[i] = string(key)
	}

	data := scriptData{
		Industry:          run.Industry,
		Experience:        run.Experience,
		IndustryLiteral:   pyLiteral(run.Industry),
		ExperienceLiteral: pyLiteral(run.Experience),
		IndustriesLiteral: pyListLiteral(industryKeys),
		JobsLiteral:       pyListLiteral(profile.Jobs),
		SkillsLiteral:     pyListLiteral(catalog.Skills(ind)),
	}

	var sb strings.Builder
	if err := scriptTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render script: %w", err)
	}
	return sb.String(), nil
}

func pyLiteral(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func pyListLiteral(items []string) string {
	b, _ := json.Marshal(items)
	return string(b)
}
