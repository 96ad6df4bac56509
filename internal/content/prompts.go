package content

import (
	"fmt"

	"github.com/origenlab/backend/internal/domain/topic"
)

// ============================================================================
// Prompt builders. Each prompt ends with the exact JSON shape expected
// back; content is in Spanish.
// ============================================================================

func topicLabel(t topic.ID) string {
	if tp, ok := topic.Lookup(t); ok {
		return fmt.Sprintf("%s (%s)", tp.Title, tp.Description)
	}
	return string(t)
}

func buildDefinitionsPrompt(t topic.ID) string {
	return fmt.Sprintf(`/no_think
Genera %d definiciones clave sobre el tema: "%s".
Cada término debe ser distinto y cada definición breve (una oración).

Responde SOLO con este JSON, sin explicación ni markdown:
[{"id": "identificador-unico", "question": "término", "answer": "definición breve"}, ...]`,
		DefinitionCount, topicLabel(t))
}

func buildQuizPrompt(t topic.ID, count int) string {
	return fmt.Sprintf(`/no_think
Genera un quiz de %d preguntas de opción múltiple sobre "%s".
Nivel: educación secundaria/universitaria.
Cada pregunta tiene 4 opciones; "correctIndex" es la posición (desde 0) de la opción correcta.

Responde SOLO con este JSON, sin explicación ni markdown:
[{"question": "...", "options": ["...", "...", "...", "..."], "correctIndex": 0, "explanation": "..."}, ...]`,
		count, topicLabel(t))
}

func buildShowPrompt(topicText string) string {
	return fmt.Sprintf(`/no_think
Genera una pregunta estilo "100 personas dijeron" (Family Feud) relacionada con ciencias naturales, específicamente: "%s".
Debe tener entre 4 y 8 respuestas posibles con puntajes que sumen 100, ordenadas de mayor a menor puntaje.

Responde SOLO con este JSON, sin explicación ni markdown:
{"question": "...", "answers": [{"text": "...", "points": 40}, ...]}`,
		topicText)
}

func buildHangmanPrompt(t topic.ID) string {
	return fmt.Sprintf(`/no_think
Dame una sola palabra clave (sin acentos, en mayúsculas, sin espacios) relacionada con: %s, y una pista breve.

Responde SOLO con este JSON, sin explicación ni markdown:
{"word": "PALABRA", "hint": "pista breve"}`,
		topicLabel(t))
}
