package main

// Render a sample CV and print its HTML plus an ATS report:
//   go run ./cmd/renderdemo

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cvision-backend/cv/ats"
	"cvision-backend/cv/model"
	"cvision-backend/cv/render"
)

func main() {
	profile := model.Profile{
		FullName: "Jordan Reyes",
		Email:    "jordan.reyes@example.com",
		Phone:    "+1 555 0100",
		Location: "Austin, TX",
		Summary:  "Backend engineer with a focus on reliable data pipelines.",
		Links: []model.Link{
			{Label: "GitHub", URL: "https://github.com/jordanreyes"},
		},
		Skills:     []string{"Go", "PostgreSQL", "AWS", "Docker"},
		TargetRole: "Senior Backend Engineer",
		Language:   "EN",
	}

	endDate := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
	experiences := []model.Experience{
		{
			JobTitle:    "Backend Engineer",
			Company:     "Acme Corp",
			StartDate:   time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     &endDate,
			Description: "Built ingestion services handling 2M events per day.",
		},
		{
			JobTitle:    "Senior Backend Engineer",
			Company:     "Globex",
			StartDate:   time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC),
			Description: "Leading the storage platform team.",
		},
	}

	template := model.Template{
		Name:      "ATS Minimal",
		Category:  "ATS_MINIMAL",
		LayoutKey: "ats_minimal",
	}

	html := render.Render(profile, experiences, template, profile.TargetRole, profile.Language)
	fmt.Println(html)

	jobDescription := "Senior Backend Engineer with Go, PostgreSQL and AWS experience."
	report := ats.Score(html, jobDescription)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
