// Package glossary explains the financial terms used by the questionnaire
// and the portfolio results. Every term has a static definition; when an LLM
// provider is configured the Service can add a longer explanation.
package glossary

import (
	"sort"
	"strings"
)

// Term is a glossary entry.
type Term struct {
	Key        string
	Name       string
	Definition string
	// Aliases are the lower-case spellings matched by TermsIn.
	Aliases []string
}

var terms = []Term{
	{
		Key:        "cdi",
		Name:       "CDI",
		Definition: "Certificado de Depósito Interbancário. Taxa que os bancos usam para emprestar entre si e principal referência de rentabilidade da renda fixa.",
		Aliases:    []string{"cdi"},
	},
	{
		Key:        "renda-fixa",
		Name:       "Renda Fixa",
		Definition: "Investimentos cuja regra de remuneração é conhecida no momento da aplicação, como títulos públicos, CDBs e debêntures.",
		Aliases:    []string{"renda fixa"},
	},
	{
		Key:        "pos-fixado",
		Name:       "Pós-Fixado",
		Definition: "Título cuja rentabilidade acompanha um indexador, normalmente o CDI ou a Selic, e só é conhecida ao final do período.",
		Aliases:    []string{"pós-fixado", "pos-fixado", "pós fixado"},
	},
	{
		Key:        "pre-fixado",
		Name:       "Pré-Fixado",
		Definition: "Título com taxa definida na compra. O investidor sabe quanto receberá se mantiver até o vencimento.",
		Aliases:    []string{"pré-fixado", "pre-fixado", "renda fixa - pré"},
	},
	{
		Key:        "ipca",
		Name:       "IPCA+",
		Definition: "Título que paga a inflação medida pelo IPCA mais uma taxa fixa, protegendo o poder de compra.",
		Aliases:    []string{"ipca"},
	},
	{
		Key:        "reserva-emergencia",
		Name:       "Reserva de Emergência",
		Definition: "Dinheiro guardado em aplicações de alta liquidez e baixo risco para cobrir imprevistos, em geral de 6 a 12 meses de despesas.",
		Aliases:    []string{"reserva de emergência", "reserva de emergencia"},
	},
	{
		Key:        "fii",
		Name:       "Fundos Imobiliários",
		Definition: "Fundos negociados em bolsa que investem em imóveis ou títulos do setor imobiliário e distribuem rendimentos periódicos.",
		Aliases:    []string{"fundos imobiliários", "fundos imobiliarios", "fii"},
	},
	{
		Key:        "renda-variavel",
		Name:       "Renda Variável",
		Definition: "Investimentos sem rentabilidade definida, como ações, cujo valor oscila com o mercado.",
		Aliases:    []string{"renda variável", "renda variavel", "ações"},
	},
	{
		Key:        "volatilidade",
		Name:       "Volatilidade",
		Definition: "Medida de quanto o valor de um investimento oscila em torno da média. Quanto maior, mais incerto o resultado no curto prazo.",
		Aliases:    []string{"volatilidade", "oscila", "cair", "caísse", "quedas"},
	},
	{
		Key:        "sharpe",
		Name:       "Índice de Sharpe",
		Definition: "Retorno acima da taxa livre de risco dividido pela volatilidade. Indica quanto retorno a carteira entrega por unidade de risco.",
		Aliases:    []string{"sharpe"},
	},
	{
		Key:        "portfolio",
		Name:       "Portfólio",
		Definition: "Conjunto de investimentos de uma pessoa, também chamado de carteira.",
		Aliases:    []string{"portfólio", "portfolio", "carteira"},
	},
	{
		Key:        "crise",
		Name:       "Crise de Mercado",
		Definition: "Período de quedas fortes e generalizadas nos preços dos ativos, normalmente acompanhado de aumento da volatilidade.",
		Aliases:    []string{"crise"},
	},
}

var byKey = func() map[string]Term {
	m := make(map[string]Term, len(terms))
	for _, t := range terms {
		m[t.Key] = t
	}
	return m
}()

// All returns every term in glossary order.
func All() []Term {
	return append([]Term(nil), terms...)
}

// Lookup returns the term with the given key.
func Lookup(key string) (Term, bool) {
	t, ok := byKey[key]
	return t, ok
}

// TermsIn returns the terms mentioned in texts, ordered by where they first
// appear in the concatenated text.
func TermsIn(texts ...string) []Term {
	haystack := strings.ToLower(strings.Join(texts, "\n"))

	type hit struct {
		term Term
		pos  int
	}
	var hits []hit
	for _, t := range terms {
		first := -1
		for _, a := range t.Aliases {
			if i := indexWord(haystack, a); i >= 0 && (first < 0 || i < first) {
				first = i
			}
		}
		if first >= 0 {
			hits = append(hits, hit{t, first})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]Term, len(hits))
	for i, h := range hits {
		out[i] = h.term
	}
	return out
}

// indexWord finds needle in s where it is not glued to other letters.
func indexWord(s, needle string) int {
	from := 0
	for {
		i := strings.Index(s[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(needle)
		if boundary(s, i-1) && boundary(s, end) {
			return i
		}
		from = i + 1
	}
}

func boundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	// Bytes >= 0x80 belong to accented letters.
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c >= 0x80)
}
