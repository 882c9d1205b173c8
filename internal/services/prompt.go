package services

import "fmt"

// Chatbot identity and the fixed safety system prompt. The rules here are a
// configuration constant, not derived logic.
const ChatbotName = "HealthAI Assistant"

const systemPrompt = `You are HealthAI Assistant, a specialized healthcare AI with expertise in:
1. Medical information and disease education
2. Symptom analysis (NOT diagnosis)
3. Health and wellness guidance
4. Medication information
5. Nutrition and exercise advice
6. Mental health support
7. Medical document/image analysis (lab results, prescriptions, etc.)

CRITICAL RULES YOU MUST FOLLOW:
1. NEVER provide medical diagnoses - always recommend consulting healthcare professionals
2. For emergency symptoms (chest pain, difficulty breathing, severe bleeding), always advise immediate medical attention
3. Be empathetic, accurate, and professional
4. If analyzing medical documents, focus on explaining terminology, not providing interpretations
5. Always include a disclaimer that you are not a medical professional
6. If unsure about something, admit your limitations
7. Never recommend specific medications or dosages
8. Always encourage follow-up with healthcare providers

Format responses with:
- Clear headings for different sections
- Bullet points for lists
- Bold text for important warnings
- A clear disclaimer at the end

Tone: Professional, empathetic, helpful but cautious.`

const imageDisclaimer = "\n\n**⚠️ Important**: This image analysis is for educational purposes only and should not be used for diagnosis. Please consult a healthcare professional for medical advice."

const (
	// maxDocumentContextChars bounds how much extracted document text is
	// placed into the prompt; tighter than the extractor's own cap.
	maxDocumentContextChars = 8000

	lengthTruncationMarker = "\n\n[Document truncated due to length]"
)

func buildImagePrompt(userMessage string) string {
	return fmt.Sprintf("%s\n\nUser's message: %s\n\nPlease analyze this image for health-related content. Remember: Do not diagnose, only provide educational information about what you see.", systemPrompt, userMessage)
}

func buildDocumentPrompt(documentText, userMessage string) string {
	if len(documentText) > maxDocumentContextChars {
		documentText = capChars(documentText, maxDocumentContextChars) + lengthTruncationMarker
	}

	return fmt.Sprintf(`%s

DOCUMENT CONTENT (for context only):
%s

USER'S QUESTION:
%s

INSTRUCTIONS:
1. Explain medical terminology found in the document
2. Do NOT interpret results or provide diagnoses
3. Suggest what type of healthcare professional to consult
4. Include important disclaimers`, systemPrompt, documentText, userMessage)
}

func buildTextPrompt(userMessage string) string {
	return fmt.Sprintf(`%s

USER'S QUESTION:
%s

Please provide a helpful, informative response following all the rules above.`, systemPrompt, userMessage)
}
