package llm

import "strings"

// BuildSystemPrompt composes the system message for the analysis call.
func BuildSystemPrompt() string {
	return "You are a recruitment assistant. You must analyze the resume against the job description and return ONLY valid JSON."
}

// BuildAnalysisPrompt packages the job description and resume text and
// enumerates the six required JSON fields with their constraints.
func BuildAnalysisPrompt(jobDescription, resumeText string) string {
	var b strings.Builder
	b.WriteString("Job Description: ")
	b.WriteString(jobDescription)
	b.WriteString("\nResume Text: ")
	b.WriteString(resumeText)
	b.WriteString("\n\nAnalyze the resume against the job description.\n")
	b.WriteString("Return a valid JSON object with the following fields:\n")
	b.WriteString(`- "name": Candidate's full name (string)` + "\n")
	b.WriteString(`- "email": Candidate's email address (string)` + "\n")
	b.WriteString(`- "experience_years": Total years of relevant experience (integer)` + "\n")
	b.WriteString(`- "skills_match_score": Score from 0-100 based on skills match (integer)` + "\n")
	b.WriteString(`- "education_score": Score from 0-100 based on education match (integer)` + "\n")
	b.WriteString(`- "summary": A detailed professional summary (4-6 sentences) highlighting the candidate's key qualifications, experience, and specific fit for the role. Do not leave this empty. (string)` + "\n")
	b.WriteString("\nEnsure the output is valid JSON.")
	return b.String()
}

// BuildSummaryPrompt is the second-pass repair prompt: summary only, no JSON,
// no preamble.
func BuildSummaryPrompt(jobDescription, resumeText string) string {
	var b strings.Builder
	b.WriteString("Job Description: ")
	b.WriteString(jobDescription)
	b.WriteString("\nResume Text: ")
	b.WriteString(resumeText)
	b.WriteString("\n\nWrite a detailed professional summary (4-6 sentences) of the candidate's profile, ")
	b.WriteString("highlighting their key skills, experience, and suitability for the role. ")
	b.WriteString("Focus on actionable insights for a recruiter. ")
	b.WriteString("Do not include any introductory text, just the summary.")
	return b.String()
}
