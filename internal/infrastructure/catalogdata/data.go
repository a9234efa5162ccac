package catalogdata

import "github.com/swagchile/catalogo-api/internal/domain/entity"

// Catálogo de la tienda. Los conteos de categorías y proveedores deben
// cuadrar con la lista de productos; TestConteos lo verifica.
var products = []entity.Product{
	{
		ID: 1, Name: "Polo Piqué Premium", SKU: "POL-001",
		Category: "textil", Supplier: "textilsur",
		BasePrice: 8990, Stock: 150, Status: entity.StatusActive,
		Description: "Polo piqué 220 g con bordado de logo incluido hasta 10.000 puntadas.",
		Features:    []string{"Algodón piqué 220 g/m²", "Bordado incluido", "Cuello reforzado"},
		Colors:      []string{"Blanco", "Negro", "Azul Marino", "Rojo"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 10, Price: 8490, Discount: 6},
			{MinQty: 25, Price: 7990, Discount: 11},
			{MinQty: 50, Price: 7490, Discount: 17},
		},
	},
	{
		ID: 2, Name: "Taza Cerámica Clásica", SKU: "TAZ-001",
		Category: "drinkware", Supplier: "cerampro",
		BasePrice: 3500, Stock: 300, Status: entity.StatusActive,
		Description: "Taza de cerámica 330 ml apta para sublimación a todo color.",
		Features:    []string{"Cerámica grado AA", "Sublimación full color", "Apta microondas"},
		Colors:      []string{"Blanco", "Negro Mate"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 24, Price: 3200, Discount: 9},
			{MinQty: 72, Price: 2900, Discount: 17},
		},
	},
	{
		ID: 3, Name: "Bolígrafo Ejecutivo Metal", SKU: "BOL-001",
		Category: "escritura", Supplier: "grafiandes",
		BasePrice: 1990, Stock: 1000, Status: entity.StatusActive,
		Description: "Bolígrafo metálico con grabado láser de logo.",
		Features:    []string{"Cuerpo de aluminio", "Grabado láser incluido", "Tinta alemana"},
		Colors:      []string{"Plata", "Negro", "Azul"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 50, Price: 1790, Discount: 10},
			{MinQty: 200, Price: 1590, Discount: 20},
			{MinQty: 500, Price: 1390, Discount: 30},
		},
	},
	{
		ID: 4, Name: "Libreta Ecológica A5", SKU: "LIB-001",
		Category: "oficina", Supplier: "grafiandes",
		BasePrice: 4490, Stock: 200, Status: entity.StatusActive,
		Description: "Libreta de tapa kraft con 80 hojas de papel reciclado.",
		Features:    []string{"Papel 100% reciclado", "Tapa kraft serigrafiada", "Elástico de cierre"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 25, Price: 4190, Discount: 7},
			{MinQty: 100, Price: 3890, Discount: 13},
		},
	},
	{
		ID: 5, Name: "Botella Térmica 500ml", SKU: "BOT-001",
		Category: "drinkware", Supplier: "tecnoimport",
		BasePrice: 12990, Stock: 80, Status: entity.StatusActive,
		Description: "Botella de acero inoxidable doble pared, 12 horas frío / 6 calor.",
		Features:    []string{"Acero inoxidable 304", "Doble pared al vacío", "Grabado láser incluido"},
		Colors:      []string{"Acero", "Negro", "Azul Petróleo"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 12, Price: 11990, Discount: 8},
			{MinQty: 48, Price: 10990, Discount: 15},
		},
	},
	{
		ID: 6, Name: "Polerón Canguro", SKU: "POLR-001",
		Category: "textil", Supplier: "textilsur",
		BasePrice: 15990, Stock: 60, Status: entity.StatusActive,
		Description: "Polerón con capucha y bolsillo canguro, estampado serigráfico.",
		Features:    []string{"Franela perchada 320 g/m²", "Serigrafía hasta 3 colores"},
		Colors:      []string{"Gris Melange", "Negro", "Burdeo"},
		Sizes:       []string{"S", "M", "L", "XL"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 10, Price: 14990, Discount: 6},
			{MinQty: 30, Price: 13990, Discount: 13},
		},
	},
	{
		ID: 7, Name: "Mochila Urbana", SKU: "MOC-001",
		Category: "bolsas", Supplier: "ecopack",
		BasePrice: 18990, Stock: 45, Status: entity.StatusPending,
		Description: "Mochila urbana con compartimento acolchado para notebook 15,6\".",
		Features:    []string{"Poliéster 600D", "Compartimento notebook", "Bolsillo antirrobo"},
		Colors:      []string{"Negro", "Gris"},
	},
	{
		ID: 8, Name: "Bolsa Ecológica TNT", SKU: "BOL-ECO-001",
		Category: "bolsas", Supplier: "ecopack",
		BasePrice: 1290, Stock: 2000, Status: entity.StatusActive,
		Description: "Bolsa reutilizable TNT 80 g con serigrafía a un color.",
		Features:    []string{"TNT 80 g/m²", "Serigrafía 1 color incluida", "Reutilizable"},
		Colors:      []string{"Verde", "Azul", "Crudo"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 100, Price: 1090, Discount: 16},
			{MinQty: 500, Price: 890, Discount: 31},
		},
	},
	{
		ID: 9, Name: "Pendrive 32GB Bambú", SKU: "PEN-001",
		Category: "tecnologia", Supplier: "tecnoimport",
		BasePrice: 7990, Stock: 0, Status: entity.StatusInactive,
		Description: "Pendrive USB 3.0 con carcasa de bambú grabada.",
		Features:    []string{"USB 3.0", "Carcasa de bambú", "Grabado láser incluido"},
	},
	{
		ID: 10, Name: "Cargador Inalámbrico", SKU: "CAR-001",
		Category: "tecnologia", Supplier: "tecnoimport",
		BasePrice: 13990, Stock: 35, Status: entity.StatusActive,
		Description: "Base de carga inalámbrica 15 W con logo impreso UV.",
		Features:    []string{"Carga rápida 15 W", "Impresión UV full color"},
		Colors:      []string{"Negro", "Blanco"},
	},
	{
		ID: 11, Name: "Gorra Bordada", SKU: "GOR-001",
		Category: "textil", Supplier: "textilsur",
		BasePrice: 5990, Stock: 120, Status: entity.StatusActive,
		Description: "Gorra de gabardina con cierre ajustable y bordado frontal.",
		Features:    []string{"Gabardina de algodón", "Bordado 3D frontal", "Cierre metálico"},
		Colors:      []string{"Negro", "Azul Marino", "Beige"},
		PriceBreaks: []entity.PriceBreak{
			{MinQty: 12, Price: 5490, Discount: 8},
			{MinQty: 48, Price: 4990, Discount: 17},
		},
	},
	{
		ID: 12, Name: "Agenda Ejecutiva", SKU: "AGE-001",
		Category: "oficina", Supplier: "grafiandes",
		BasePrice: 9990, Stock: 90, Status: entity.StatusActive,
		Description: "Agenda ejecutiva de cuero sintético con estampado al calor.",
		Features:    []string{"Cuero sintético", "Estampado al calor", "Cinta marcadora"},
		Colors:      []string{"Negro", "Café"},
	},
}

var categories = []entity.Category{
	{ID: "all", Name: "Todos los productos", Icon: "apps", Count: 12},
	{ID: "textil", Name: "Textil", Icon: "checkroom", Count: 3},
	{ID: "drinkware", Name: "Drinkware", Icon: "local_cafe", Count: 2},
	{ID: "escritura", Name: "Escritura", Icon: "edit", Count: 1},
	{ID: "oficina", Name: "Oficina", Icon: "work", Count: 2},
	{ID: "bolsas", Name: "Bolsas y Mochilas", Icon: "shopping_bag", Count: 2},
	{ID: "tecnologia", Name: "Tecnología", Icon: "devices", Count: 2},
}

var suppliers = []entity.Supplier{
	{ID: "textilsur", Name: "Textil Sur", Products: 3},
	{ID: "cerampro", Name: "CeramPro", Products: 1},
	{ID: "grafiandes", Name: "Gráfica Andes", Products: 3},
	{ID: "tecnoimport", Name: "TecnoImport", Products: 3},
	{ID: "ecopack", Name: "EcoPack", Products: 2},
}
