package aiquiz

import "fmt"

const systemPrompt = `
Você é um gerador de perguntas de múltipla escolha para um portal de treinamento interno.

Seu papel é criar perguntas **claras e objetivas** sobre o conteúdo de um vídeo de treinamento,
a partir do título e da descrição fornecidos.

Regras gerais:
1. Cada pergunta deve ter uma **única resposta correta**.
2. Cada pergunta deve ter exatamente 4 alternativas plausíveis.
3. "correct_index" é o índice (começando em 0) da alternativa correta.
4. Responda APENAS com o JSON, sem texto adicional.

Formato JSON esperado:

[
  {
    "text": "<texto da pergunta>",
    "options": ["...", "...", "...", "..."],
    "correct_index": 0,
    "explanation": "<explicação breve da resposta correta>"
  }
]
`

func BuildUserPrompt(title, description string, quantity int) string {
	if quantity <= 0 {
		quantity = 5
	}
	return fmt.Sprintf(
		"Gere %d perguntas sobre o vídeo de treinamento a seguir.\n\nTítulo: %s\n\nDescrição: %s",
		quantity, title, description,
	)
}
