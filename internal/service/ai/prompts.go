package ai

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

const defaultTopic = "General Content"

// buildContext renders results as Source/Location/Topic/Content blocks.
func buildContext(results []domain.SearchResult) string {
	blocks := make([]string, len(results))
	for i, r := range results {
		topic := r.Topic
		if topic == "" {
			topic = defaultTopic
		}
		blocks[i] = fmt.Sprintf("Source: %s\nLocation: %s\nTopic: %s\nContent: %s\n---\n",
			r.Filename, domain.FormatLocation(r.PageNumber, r.SlideNumber, "N/A"), topic, r.Content)
	}
	return strings.Join(blocks, "\n")
}

// buildQuizContext renders results as Document/Page lines for quiz generation.
func buildQuizContext(results []domain.SearchResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "Document: %s (Page/Slide: %s)\n%s\n\n",
			r.Filename, domain.FormatLocation(r.PageNumber, r.SlideNumber, "N/A"), r.Content)
	}
	return b.String()
}

func answerPrompt(question, context string) string {
	return fmt.Sprintf(`You are an intelligent AI assistant helping a student with their study materials.
The student has asked: "%s"

Below is the content from their uploaded documents. Please:

1. **Think creatively** - Even if the exact answer isn't in the documents, use your knowledge to provide helpful, relevant information
2. **Always provide page references** - When you reference information, cite the exact document name and page number
3. **Be helpful** - If the question is related to the subject matter but not directly covered, provide relevant insights
4. **Combine document knowledge with general knowledge** - Use both the document content and your understanding to give comprehensive answers
5. **Validate with sources** - Always mention which pages support your answers

Document Content:
%s

Remember: Think like a knowledgeable tutor who can connect concepts and provide insights beyond just what's explicitly written.
`, question, context)
}

func summaryPrompt(topic, context string) string {
	return fmt.Sprintf(`You are an intelligent AI assistant helping a student summarize their study materials.

The student wants to summarize: "%s"

This could be:
- A single word (e.g., "clustering", "databases")
- A phrase (e.g., "clustering in dbms", "database management systems")
- A sentence (e.g., "What is clustering in database systems?")
- A concept (e.g., "machine learning algorithms")

Your task:
1. **Understand the intent** - Figure out what the student really wants to know about
2. **Find relevant content** - Look through the documents for related information
3. **Be flexible** - Don't just look for exact matches, find related concepts
4. **Provide comprehensive summary** - Include key points, definitions, examples
5. **Always cite sources** - Reference specific document names and page numbers
6. **Be helpful** - Even if the exact topic isn't found, provide related information

Document Content:
%s

Remember: Think like a knowledgeable tutor who can understand what students are asking for, even when they don't use the exact terminology.
`, topic, context)
}

func quizPrompt(count int, difficulty domain.Difficulty, types []domain.QuestionType, context string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return fmt.Sprintf(`Based on the following document content, generate %d %s quiz questions.
Include a mix of question types: %s

For each question, provide:
1. Question text
2. Question type (MCQ, True/False, Fill-in-the-blank)
3. Correct answer
4. For MCQs: 4 options (A, B, C, D)
5. Explanation of the correct answer
6. Source reference (document name and page/slide)

Format the response as JSON with the following structure:
{
    "questions": [
        {
            "question": "Question text",
            "type": "MCQ|TRUE_FALSE|FILL_BLANK",
            "correctAnswer": "Correct answer",
            "options": ["A", "B", "C", "D"],
            "explanation": "Explanation",
            "source": "Document name - Page/Slide X"
        }
    ]
}

Document Content:
%s
`, count, strings.ToLower(difficulty.String()), strings.Join(names, ", "), context)
}

func flashcardPrompt(count int, topic, context string) string {
	return fmt.Sprintf(`Based on the following document content, generate %d flashcards for the topic: %s

For each flashcard, provide:
1. Front side (question or concept)
2. Back side (answer or explanation)
3. Source reference

Format the response as JSON:
{
    "flashcards": [
        {
            "front": "Question/Concept",
            "back": "Answer/Explanation",
            "source": "Document name - Page/Slide X"
        }
    ]
}

Document Content:
%s
`, count, topic, context)
}

func conceptsPrompt(context string) string {
	return fmt.Sprintf(`Based on the following document content, extract the main key concepts, topics, and important terms.
Return them as a simple list, one concept per line.
Focus on academic subjects, technical terms, and important concepts.

Document Content:
%s
`, context)
}
