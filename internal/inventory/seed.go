package inventory

import "time"

// Seed is the dataset the store falls back to when no snapshot exists (or
// the stored one does not parse): five sample products across three
// categories, plus the reserved "all categories" marker.
func Seed() State {
	now := time.Now().UTC()
	return State{
		Products: []Product{
			{
				ID:          "1",
				Name:        "Notebook Dell Inspiron",
				Category:    "Eletrônicos",
				Price:       3599.99,
				Quantity:    15,
				Description: "Notebook Dell Inspiron 15 i7 16GB RAM 512GB SSD",
				Code:        "NB-DELL-001",
				MinStock:    5,
				Unit:        UnitPiece,
				CreatedAt:   now,
				Supplier:    "Dell Computadores",
			},
			{
				ID:          "2",
				Name:        "Monitor LCD 24\"",
				Category:    "Eletrônicos",
				Price:       899.90,
				Quantity:    8,
				Description: "Monitor LCD 24 polegadas Full HD 75Hz",
				Code:        "MON-LCD-001",
				MinStock:    3,
				Unit:        UnitPiece,
				CreatedAt:   now,
				Supplier:    "LG Eletrônicos",
			},
			{
				ID:          "3",
				Name:        "Mesa de Escritório",
				Category:    "Móveis",
				Price:       450.00,
				Quantity:    5,
				Description: "Mesa de escritório em MDF 120x60cm",
				Code:        "MOV-MESA-001",
				MinStock:    2,
				Unit:        UnitPiece,
				CreatedAt:   now,
				Supplier:    "Móveis Corporativos",
			},
			{
				ID:          "4",
				Name:        "Cadeira Ergonômica",
				Category:    "Móveis",
				Price:       699.90,
				Quantity:    10,
				Description: "Cadeira ergonômica com apoio lombar e ajuste de altura",
				Code:        "MOV-CAD-001",
				MinStock:    4,
				Unit:        UnitPiece,
				CreatedAt:   now,
				Supplier:    "Móveis Corporativos",
			},
			{
				ID:          "5",
				Name:        "Papel A4",
				Category:    "Papelaria",
				Price:       19.90,
				Quantity:    50,
				Description: "Pacote com 500 folhas de papel A4 75g/m²",
				Code:        "PAP-A4-001",
				MinStock:    20,
				Unit:        UnitPack,
				CreatedAt:   now,
				Supplier:    "Distribuidora de Papéis",
			},
		},
		Categories: []string{CategoryAll, "Eletrônicos", "Móveis", "Papelaria"},
	}
}
