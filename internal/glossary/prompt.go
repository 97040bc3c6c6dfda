package glossary

import (
	"fmt"
	"strings"
)

const systemPrompt = `Você é um assessor de investimentos que explica conceitos financeiros para investidores brasileiros iniciantes. Responda sempre em português do Brasil.`

func buildUserMessage(t Term) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Termo: %s\n", t.Name)
	fmt.Fprintf(&b, "Definição curta: %s\n", t.Definition)
	b.WriteString(`
Instruções:
1. Explique o termo em 2 a 4 frases simples, sem jargão.
2. Dê um exemplo concreto usando valores em reais.
3. Classifique o risco normalmente associado ao termo como "baixo", "médio", "alto" ou "n/a" quando não se aplica.
4. Não faça recomendação de investimento.`)
	return b.String()
}
