package catalog

// Asset class labels shared by the built-in portfolios.
const (
	AssetPostFixed   = "Renda Fixa - Pós-Fixado"
	AssetInflation   = "Renda Fixa - IPCA +"
	AssetPreFixed    = "Renda Fixa - Pré"
	AssetActive      = "Renda Fixa - Ativo"
	AssetReserve     = "Renda Fixa - Reserva de Emergência | Caixa"
	AssetRealEstate  = "Fundos Imobiliários"
	AssetEquityBR    = "Renda Variável Brasil"
	AssetEquityWorld = "Renda Variável Global"
)

// ChartColors is the palette for allocation charts, indexed by asset
// position. Callers wrap around when a portfolio has more slices.
var ChartColors = []string{
	"#002147",
	"#004080",
	"#2a6f97",
	"#6a994e",
	"#f28482",
	"#f8ad9d",
	"#c77dff",
	"#8338ec",
}

func seedQuestions() []Question {
	return []Question{
		{ID: 0, Weight: 1, Section: "Experiência",
			Text:    "Qual é sua experiência anterior com investimentos?",
			Options: []string{"Nenhuma", "Alguma experiência", "Experiente"}},
		{ID: 6, Weight: 1, Section: "Experiência",
			Text:    "Com que frequência você revisa seus investimentos?",
			Options: []string{"Raramente", "Anualmente", "Mensalmente"}},
		{ID: 7, Weight: 1.5, Section: "Objetivos",
			Text:    "Qual é sua prioridade ao investir?",
			Options: []string{"Segurança", "Equilíbrio", "Crescimento"}},
		{ID: 8, Weight: 1, Section: "Objetivos",
			Text:    "Você prefere uma carteira automatizada ou personalizada?",
			Options: []string{"Automatizada", "Indiferente", "Personalizada"}},
		{ID: 1, Weight: 2, Section: "Tolerância",
			Text:    "Qual é o seu nível de conforto ao ver seu portfólio cair 10% em um mês?",
			Options: []string{"Muito desconfortável", "Um pouco desconfortável", "Confortável"}},
		{ID: 2, Weight: 2.5, Section: "Tolerância",
			Text:    "Se você tivesse R$ 100.000 investidos, quanto estaria disposto a perder em 6 meses para tentar obter retornos maiores?",
			Options: []string{"Até R$ 5.000", "Até R$ 15.000", "Até R$ 30.000 ou mais"}},
		{ID: 3, Weight: 1.5, Section: "Tolerância",
			Text:    "Qual cenário descreve melhor sua reação a uma crise do mercado?",
			Options: []string{"Vendo quedas, vendo tudo e saio", "Fico investido e espero", "Vejo como oportunidade e compro mais"}},
		{ID: 4, Weight: 2, Section: "Tolerância",
			Text:    "Em um investimento com chance de ganhar R$ 30.000 ou perder R$ 10.000, o que você faria?",
			Options: []string{"Evito a perda", "Talvez aceitaria", "Aceito o risco"}},
		{ID: 5, Weight: 2, Section: "Tolerância",
			Text:    "Se seu investimento caísse 20% em um trimestre, o que você faria?",
			Options: []string{"Venderia tudo", "Aguardaria recuperação", "Investiria mais"}},
		{ID: 9, Weight: 1.5, Section: "Tolerância",
			Text:    "Se você herdasse R$ 1 milhão hoje, como alocaria o valor?",
			Options: []string{"Deixaria parado no banco", "Investiria aos poucos", "Investiria tudo estrategicamente"}},
	}
}

func allocation(postFixed, inflation, preFixed, active, reserve, realEstate, equityBR, equityWorld float64) []Slice {
	return []Slice{
		{Asset: AssetPostFixed, Percent: postFixed},
		{Asset: AssetInflation, Percent: inflation},
		{Asset: AssetPreFixed, Percent: preFixed},
		{Asset: AssetActive, Percent: active},
		{Asset: AssetReserve, Percent: reserve},
		{Asset: AssetRealEstate, Percent: realEstate},
		{Asset: AssetEquityBR, Percent: equityBR},
		{Asset: AssetEquityWorld, Percent: equityWorld},
	}
}

func seedProfiles() []Profile {
	return []Profile{
		{
			Key:         Conservative,
			Name:        "Portfólio Conservador - Topo Capital",
			Description: "Ideal para investidores que prezam pela segurança e têm baixa tolerância a perdas.",
			Allocation:  allocation(60, 15, 5, 0, 20, 0, 0, 0),
			Metrics: Metrics{
				Return:         "12,6% a.a.",
				Volatility:     "0,56% a.a.",
				Sharpe:         "1,17",
				CDIPerformance: "109,74%",
			},
		},
		{
			Key:         Moderate,
			Name:        "Portfólio Moderado - Topo Capital",
			Description: "Equilíbrio entre segurança e retorno, para investidores que aceitam oscilações moderadas.",
			Allocation:  allocation(50, 15, 5, 5, 10, 5, 7.5, 2.5),
			Metrics: Metrics{
				Return:         "14,8% a.a.",
				Volatility:     "1,33% a.a.",
				Sharpe:         "1,32",
				CDIPerformance: "126,98%",
			},
		},
		{
			Key:         Aggressive,
			Name:        "Portfólio Arrojado - Topo Capital",
			Description: "Para investidores com alta tolerância a risco que buscam retornos elevados.",
			Allocation:  allocation(45, 20, 2.5, 5, 5, 5, 7.5, 10),
			Metrics: Metrics{
				Return:         "15,3% a.a.",
				Volatility:     "2,16% a.a.",
				Sharpe:         "1,78",
				CDIPerformance: "131,47%",
			},
		},
	}
}
