package assistant

import (
	"fmt"
	"strings"

	"github.com/abhisek/sahayak/internal/profile"
)

const coachInstruction = `You are 'Shikshak Guide' (Teacher's Guide), a proactive AI pedagogue for Indian teachers.

CORE IDENTITY & GOAL:
- You are a mentor, not just a chatbot. Simplify teaching, suggest creative low-cost activities (TLM), and align with NIPUN Bharat and NCERT guidelines.
- Tone: respectful (Namaste!), encouraging and professional, yet warm.

INSTRUCTIONS FOR ANSWERING:
1. Be specific and actionable. If asked "how to teach fractions", give a step-by-step activity using stones, paper or chalk.
2. Context matters:
   - For Grade 1, focus on play-based learning (FLN).
   - For Grade 5, focus on concepts and critical thinking.
   - Use the teacher's subject to tailor examples, but answer any subject the teacher asks about.
3. Structure:
   - Start with a direct answer or a warm acknowledgement.
   - Provide a "Try This" activity or solution.
   - End with a follow-up question to keep the conversation going.
4. Constraints:
   - Keep answers under 200 words unless asked for a full lesson plan.
   - Use simple language suitable for a second-language learner.
   - Assume resources are limited: chalk, duster, blackboard, nature.
   - Reply in the teacher's preferred language.`

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == profile.NotSet {
		return def
	}
	return v
}

func buildProfileContext(p profile.UserProfile) string {
	var b strings.Builder
	b.WriteString("Teacher Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(p.Name, "Teacher"))
	fmt.Fprintf(&b, "- Grade Level: %s\n", orDefault(p.Grade, "Primary Level"))
	fmt.Fprintf(&b, "- Main Subject: %s\n", orDefault(p.Subject, "General"))
	fmt.Fprintf(&b, "- School Context: %s (Low resource environment)\n", orDefault(p.School, "Rural Government School"))
	fmt.Fprintf(&b, "- Preferred Language: %s\n", orDefault(p.Language, "English"))
	return b.String()
}

func speakerLabel(r Role) string {
	if r == RoleUser {
		return "Teacher"
	}
	return "AI Coach"
}

// buildChatPrompt folds instruction, profile, history and question into the
// single user message sent for a chat turn.
func buildChatPrompt(p profile.UserProfile, history []Message, question string) string {
	var b strings.Builder
	b.WriteString(coachInstruction)
	b.WriteString("\n\n")
	b.WriteString(buildProfileContext(p))

	b.WriteString("\nConversation History:\n")
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", speakerLabel(m.Role), m.Text)
	}

	b.WriteString("\nCurrent Question:\n")
	b.WriteString(question)
	return b.String()
}

// maxVisualInput bounds how much of a reply is sent for prompt refinement.
const maxVisualInput = 1500

// BlankBoardPrompt is the scene used when a reply names nothing drawable.
const BlankBoardPrompt = "A flat vector illustration of a clean blackboard with 'Welcome' written on it in a rural Indian classroom. White background, bright colors."

func buildVisualPrompt(text string) string {
	if r := []rune(text); len(r) > maxVisualInput {
		text = string(r[:maxVisualInput])
	}
	return fmt.Sprintf(`You are an art director for educational illustrations for Indian schools.

INPUT TEXT (advice given to a teacher):
%q

TASK:
Identify the specific physical activity, object or diagram described in the advice.
Write a prompt for a clear, single-subject illustration of that action or object.

STRICT RULES:
1. Ignore abstract concepts such as patience or kindness. Visualize the nouns and verbs, for example "counting stones" or "drawing a circle on the blackboard".
2. Set "concrete" to false when no physical object or action is mentioned.
3. Setting: rural Indian government school classroom.
4. Style: simple, flat, colorful vector art on a white background with high contrast.
5. No text in the image. Any required numbers or words must be in English.

PROMPT TEMPLATE:
"A flat vector illustration of [specific subject/action] in a rural Indian classroom. [specific details like chalkboard, stones, notebook]. White background, bright colors."`, text)
}

func buildEditPrompt(instruction string) string {
	return fmt.Sprintf("Edit this image. Instruction: %s. Return the result as an image.", strings.TrimSpace(instruction))
}

// Greeting is the first assistant message of every overlay.
func Greeting(p profile.UserProfile) string {
	class := strings.TrimSpace(strings.TrimPrefix(orDefault(p.Grade, "1"), "Grade"))
	return fmt.Sprintf("Namaste %s! 🙏\nI am ready to help. Ask me about your lesson plan, or say \"Give me an activity for Class %s\"",
		orDefault(p.Name, "Teacher"), class)
}
