package catalog

// The predefined catalog. Names and units are pt-BR and stable: list entries
// are matched back to categories by name.
var categories = []Category{
	{
		Name: "🍚 Alimentos básicos",
		Items: []Item{
			// Grãos e farinhas
			{Name: "Arroz", Unit: UnitKg, Icon: "🍚"},
			{Name: "Feijão", Unit: UnitKg, Icon: "🫘"},
			{Name: "Macarrão", Unit: UnitPacote, Icon: "🍝"},
			{Name: "Farinha de Trigo", Unit: UnitKg, Icon: "🌾"},
			{Name: "Farinha de Mandioca", Unit: UnitKg, Icon: "🌾"},
			// Temperos e condimentos
			{Name: "Açúcar", Unit: UnitKg, Icon: "🍬"},
			{Name: "Sal", Unit: UnitKg, Icon: "🧂"},
			{Name: "Óleo de Soja", Unit: UnitLitro, Icon: "🫗"},
			{Name: "Azeite", Unit: UnitFrasco, Icon: "🫒"},
			{Name: "Vinagre", Unit: UnitFrasco, Icon: "🍶"},
			{Name: "Temperos diversos", Unit: UnitUnidade, Icon: "🌿"},
			// Enlatados e conservas
			{Name: "Molho de Tomate", Unit: UnitUnidade, Icon: "🥫"},
			{Name: "Enlatados: Milho", Unit: UnitUnidade, Icon: "🌽"},
			{Name: "Enlatados: Ervilha", Unit: UnitUnidade, Icon: "🫛"},
			{Name: "Azeitonas", Unit: UnitUnidade, Icon: "🫒"},
			// Laticínios e derivados
			{Name: "Leite", Unit: UnitLitro, Icon: "🥛"},
			{Name: "Creme de Leite", Unit: UnitCaixa, Icon: "🥛"},
			{Name: "Leite condensado", Unit: UnitCaixa, Icon: "🥛"},
			{Name: "Iogurte", Unit: UnitUnidade, Icon: "🥛"},
			{Name: "Ovos", Unit: UnitDuzia, Icon: "🥚"},
			{Name: "Margarina", Unit: UnitUnidade, Icon: "🧈"},
			// Café, pães e biscoitos
			{Name: "Café", Unit: UnitPacote, Icon: "☕"},
			{Name: "Achocolatado em Pó", Unit: UnitUnidade, Icon: "🍫"},
			{Name: "Pão de Forma", Unit: UnitUnidade, Icon: "🍞"},
			{Name: "Pão Francês", Unit: UnitUnidade, Icon: "🥖"},
			{Name: "Biscoito", Unit: UnitPacote, Icon: "🍪"},
		},
	},
	{
		Name: "🍖 Carnes e proteínas",
		Items: []Item{
			{Name: "Carne Bovina", Unit: UnitKg, Icon: "🥩"},
			{Name: "Frango", Unit: UnitKg, Icon: "🍗"},
			{Name: "Linguiça", Unit: UnitKg, Icon: "🌭"},
			{Name: "Sardinha Enlatada", Unit: UnitUnidade, Icon: "🐟"},
			{Name: "Queijo", Unit: UnitKg, Icon: "🧀"},
			{Name: "Presunto", Unit: UnitKg, Icon: "🥓"},
		},
	},
	{
		Name: "🥬 Hortifruti",
		Items: []Item{
			// Legumes e verduras
			{Name: "Alface", Unit: UnitUnidade, Icon: "🥬"},
			{Name: "Batata", Unit: UnitKg, Icon: "🥔"},
			{Name: "Beringela", Unit: UnitKg, Icon: "🍆"},
			{Name: "Beterraba", Unit: UnitKg, Icon: "🫜"},
			{Name: "Cebola", Unit: UnitKg, Icon: "🧅"},
			{Name: "Cenoura", Unit: UnitKg, Icon: "🥕"},
			{Name: "Tomate", Unit: UnitKg, Icon: "🍅"},
			// Frutas
			{Name: "Banana", Unit: UnitKg, Icon: "🍌"},
			{Name: "Laranja", Unit: UnitKg, Icon: "🍊"},
			{Name: "Limão", Unit: UnitKg, Icon: "🍋"},
			{Name: "Maçã", Unit: UnitKg, Icon: "🍎"},
			{Name: "Uva", Unit: UnitKg, Icon: "🍇"},
		},
	},
	{
		Name: "🧼 Produtos de limpeza",
		Items: []Item{
			{Name: "Água Sanitária", Unit: UnitLitro, Icon: "🧴"},
			{Name: "Álcool", Unit: UnitLitro, Icon: "🧴"},
			{Name: "Amaciante para Roupas", Unit: UnitLitro, Icon: "🧴"},
			{Name: "Desinfetante", Unit: UnitLitro, Icon: "🧴"},
			{Name: "Detergente", Unit: UnitUnidade, Icon: "🧴"},
			{Name: "Esponja de Lavar Louça", Unit: UnitUnidade, Icon: "🧽"},
			{Name: "Saco de lixo", Unit: UnitRolo, Icon: "🗑️"},
			{Name: "Sabão em Barra", Unit: UnitUnidade, Icon: "🧼"},
			{Name: "Sabão em Pó", Unit: UnitPacote, Icon: "🧼"},
		},
	},
	{
		Name: "🧴 Higiene pessoal",
		Items: []Item{
			{Name: "Absorventes", Unit: UnitPacote, Icon: "🩹"},
			{Name: "Algodão", Unit: UnitPacote, Icon: "☁️"},
			{Name: "Aparelho de barbear", Unit: UnitUnidade, Icon: "🪒"},
			{Name: "Condicionador", Unit: UnitUnidade, Icon: "🧴"},
			{Name: "Desodorante", Unit: UnitUnidade, Icon: "🧴"},
			{Name: "Papel Higiênico", Unit: UnitUnidade, Icon: "🧻"},
			{Name: "Pasta de Dente", Unit: UnitUnidade, Icon: "🪥"},
			{Name: "Sabonete", Unit: UnitUnidade, Icon: "🧼"},
			{Name: "Shampoo", Unit: UnitUnidade, Icon: "🧴"},
		},
	},
}
