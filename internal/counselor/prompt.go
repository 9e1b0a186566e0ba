package counselor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/careerpath/careerpath-go/internal/model"
)

const notSpecified = "Not specified"

// Persona is the fixed system prompt for every counselor request.
const Persona = `You are an expert AI career counselor specializing in the Indian education system and job market.
You provide personalized, accurate, and practical career guidance to students from Class 9 to undergraduate level.

Your expertise includes:
- Indian education system (CBSE, ICSE, State boards)
- Engineering careers (CSE, ECE, Mechanical, Civil, etc.)
- Medical careers (MBBS, BDS, Nursing, Pharmacy, etc.)
- Commerce careers (CA, CS, CFA, MBA, etc.)
- Arts and Humanities careers (Journalism, Psychology, Literature, etc.)
- Government jobs and competitive exams
- Emerging career fields (Data Science, AI/ML, Digital Marketing, etc.)

Always provide specific, actionable advice with:
- Educational requirements and pathways
- Skill development recommendations
- Job market prospects in India
- Salary expectations
- Top colleges/institutions`

// AnalysisPrompt renders every profile field into the recommendation request.
func AnalysisPrompt(p model.Profile) string {
	var b strings.Builder
	b.WriteString("Analyze this Indian student's profile and provide top 5 career recommendations:\n\n")
	fmt.Fprintf(&b, "Academic Level: %s\n", orNotSpecified(p.AcademicLevel))
	fmt.Fprintf(&b, "Current Class: %s\n", optional(p.CurrentClass))
	fmt.Fprintf(&b, "Stream: %s\n", optional(p.Stream))
	fmt.Fprintf(&b, "Subjects: %s\n", list(p.Subjects))
	fmt.Fprintf(&b, "Grades: %s\n", grades(p.Grades))
	fmt.Fprintf(&b, "Interests: %s\n", list(p.Interests))
	fmt.Fprintf(&b, "Strengths: %s\n", list(p.Strengths))
	fmt.Fprintf(&b, "Career Goals: %s\n", optional(p.CareerGoals))
	b.WriteString(`
Please provide personalized career recommendations specifically for Indian students, considering the Indian education system and job market.

For each of the top 5 career recommendations, provide:
1. Career path name
2. Brief description (2-3 sentences explaining the role)
3. Educational requirements in India (specific degrees, institutions)
4. Key skills needed
5. Salary range in India (in INR)
6. Job market prospects in India
7. Confidence score based on the student's profile (0.1 to 1.0)

Present the recommendations in a clear, structured format that helps the student understand their options.`)
	return b.String()
}

// ChatPrompt builds the single-turn chat message, with a context block when
// the student has a profile.
func ChatPrompt(userName string, p *model.Profile, message string) string {
	var b strings.Builder
	if p != nil {
		b.WriteString("User Context:\n")
		fmt.Fprintf(&b, "- Name: %s\n", orNotSpecified(userName))
		fmt.Fprintf(&b, "- Academic Level: %s\n", orNotSpecified(p.AcademicLevel))
		fmt.Fprintf(&b, "- Stream: %s\n", optional(p.Stream))
		fmt.Fprintf(&b, "- Interests: %s\n", list(p.Interests))
		fmt.Fprintf(&b, "- Current Goals: %s\n", optional(p.CareerGoals))
		b.WriteString("\nPlease provide personalized guidance based on this context.\n\n")
	}
	b.WriteString("User Question: ")
	b.WriteString(message)
	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func optional(s *string) string {
	if s == nil {
		return notSpecified
	}
	return orNotSpecified(*s)
}

func list(items []string) string {
	if len(items) == 0 {
		return notSpecified
	}
	return strings.Join(items, ", ")
}

// grades renders the grade map in key order so prompts are deterministic.
func grades(g map[string]any) string {
	if len(g) == 0 {
		return notSpecified
	}
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %v", k, g[k])
	}
	return strings.Join(parts, ", ")
}
