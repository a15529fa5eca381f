package aiwriter

import (
	"strings"
	"time"

	"cvision-backend/cv/model"
)

const systemPrompt = "You are an expert CV writer and ATS (Applicant Tracking System) specialist. " +
	"You rewrite one work experience entry to be concise, action-verb driven, and ATS-friendly. " +
	"Use standard CV language, avoid emojis, avoid tables or multi-column layouts. " +
	"Focus on quantified impact (%, time saved, revenue, users, etc.). " +
	"Return a pure JSON object with fields: optimizedDescription (string) and suggestedBullets (string[])."

const promptDateLayout = "2006-01-02"

func buildUserPrompt(profile model.Profile, exp model.Experience, req Request) string {
	var b strings.Builder
	b.WriteString("Language: " + req.Language + "\n")
	b.WriteString("Target role: " + req.TargetRole + "\n")
	b.WriteString("\n")
	b.WriteString("Candidate profile (high-level):\n")
	b.WriteString("Full name: " + profile.FullName + "\n")
	if strings.TrimSpace(profile.Summary) != "" {
		b.WriteString("Summary: " + profile.Summary + "\n")
	}

	b.WriteString("\n")
	b.WriteString("Existing experience entry to optimize:\n")
	b.WriteString("Job title: " + exp.JobTitle + "\n")
	b.WriteString("Company: " + exp.Company + "\n")
	b.WriteString("Period: " + formatPeriod(exp.StartDate, exp.EndDate) + "\n")
	b.WriteString("Description:\n")
	b.WriteString(exp.Description + "\n")

	if strings.TrimSpace(req.JobDescriptionText) != "" {
		b.WriteString("\n")
		b.WriteString("Job description / posting text (for keyword matching):\n")
		b.WriteString(req.JobDescriptionText + "\n")
	}

	b.WriteString("\n")
	b.WriteString("Instructions:\n")
	b.WriteString("- Rewrite the description for ATS-friendly CVs.\n")
	b.WriteString("- Use strong action verbs and quantify impact where possible.\n")
	b.WriteString("- Do NOT add tables, emojis, or fancy formatting.\n")
	b.WriteString("- Keep it suitable for a single-column CV layout.\n")
	b.WriteString("- Return only JSON: { \"optimizedDescription\": string, \"suggestedBullets\": string[] }.\n")

	return b.String()
}

func formatPeriod(start time.Time, end *time.Time) string {
	to := "Present"
	if end != nil {
		to = end.Format(promptDateLayout)
	}
	return start.Format(promptDateLayout) + " - " + to
}
