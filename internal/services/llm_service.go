package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/infinitystack/job-application-tracker/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var ErrLLMDisabled = errors.New("LLM disabled: no API key configured")

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. With no API key the service
// stays up in disabled mode and generation calls return ErrLLMDisabled.
func NewLLMService(apiKey string) *LLMService {
	if apiKey == "" {
		log.Println("⚠️ GEMINI_API_KEY is empty. Resume/cover letter generation disabled.")
		return &LLMService{}
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &LLMService{Client: llm}
}

const resumePrompt = `You are a resume expert. Generate a professional resume based on the user's profile and the job description provided.

The format must follow these rules:
- Do not use asterisks (*) anywhere in the resume
- Contact info (City | Phone | Email | LinkedIn) should appear below the name, also center-aligned
- Use markdown headers for each section (like ## Summary, ## Work Experience)
- Work Experience should be in the format:
[Job Title], [Company]
[City]
[Start Year] - [End Year or Present]
- Education should be in the format:
[Degree], [Institution]
[City]
[Expected Graduation Year], GPA: [GPA if available]
- Responsibilities in work experience should be bullet points
- Ensure consistent indentation, spacing, and header hierarchy
- Leave an empty line between sections

Profile:
%s

Job Description:
%s

Resume:
`

// GenerateResume builds a tailored resume from the stored profile.
func (s *LLMService) GenerateResume(ctx context.Context, profile *dtos.ProfileData, jobDescription string) (string, error) {
	if s.Client == nil {
		return "", ErrLLMDisabled
	}

	prompt := fmt.Sprintf(resumePrompt, renderProfile(profile), jobDescription)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

const coverLetterPrompt = `You are a professional cover letter writer.

Write a cover letter using the following formatting and rules:

- At the top, center the following:
%s
%s
%s
%s

- Then add:
To,
The Hiring Manager,
%s

- Do NOT include LinkedIn, URLs, street address, or placeholders like [Your Name]
- The body of the letter should be tailored to the job description
- Use a professional tone, align with resume structure, and keep it concise

Job Description:
%s

Begin the cover letter below:
`

// GenerateCoverLetter writes a letter addressed to whatever company the job
// description mentions.
func (s *LLMService) GenerateCoverLetter(ctx context.Context, profile *dtos.ProfileData, jobDescription string) (string, error) {
	if s.Client == nil {
		return "", ErrLLMDisabled
	}

	fullName := strings.TrimSpace(profile.Firstname + " " + profile.Lastname)
	company := ExtractCompanyName(jobDescription)

	prompt := fmt.Sprintf(coverLetterPrompt,
		fullName, profile.City, profile.Email, profile.Phone, company, jobDescription)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

// renderProfile flattens the aggregate profile into prompt-friendly text.
func renderProfile(p *dtos.ProfileData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s %s\n", p.Firstname, p.Lastname)
	fmt.Fprintf(&b, "Email: %s | Phone: %s | City: %s | LinkedIn: %s\n", p.Email, p.Phone, p.City, p.Linkedin)
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	if len(p.Certifications) > 0 {
		fmt.Fprintf(&b, "Certifications: %s\n", strings.Join(p.Certifications, ", "))
	}
	for _, w := range p.WorkExperience {
		fmt.Fprintf(&b, "Work: %s at %s (%d years): %s\n", w.Position, w.Company, w.YearsOfExperience, w.Responsibilities)
	}
	for _, e := range p.Education {
		fmt.Fprintf(&b, "Education: %s in %s, %s (%d), GPA %.2f\n", e.Degree, e.Field, e.Institution, e.EndYear, e.GPA)
	}
	return b.String()
}
