package inventory

// Sample catalog the store opens with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Ramo de Rosas Rojas",
			Category:    "ramos",
			Price:       45.00,
			Stock:       15,
			MinStock:    5,
			Description: "El clásico símbolo del amor y la pasión",
			ImageURL:    "https://images.pexels.com/photos/931177/pexels-photo-931177.jpeg",
		},
		{
			ID:          "2",
			Name:        "Orquídea Phalaenopsis",
			Category:    "plantas",
			Price:       60.00,
			Stock:       8,
			MinStock:    3,
			Description: "Elegante orquídea en maceta decorativa",
			ImageURL:    "https://images.pexels.com/photos/1407862/pexels-photo-1407862.jpeg",
		},
		{
			ID:          "3",
			Name:        "Arreglo de Girasoles",
			Category:    "arreglos",
			Price:       42.00,
			Stock:       12,
			MinStock:    4,
			Description: "Llena de alegría y luz cualquier espacio",
			ImageURL:    "https://images.pexels.com/photos/1624076/pexels-photo-1624076.jpeg",
		},
		{
			ID:          "4",
			Name:        "Centro de Mesa Primaveral",
			Category:    "arreglos",
			Price:       65.00,
			Stock:       6,
			MinStock:    3,
			Description: "Perfecto para eventos y celebraciones especiales",
			ImageURL:    "https://images.pexels.com/photos/6044266/pexels-photo-6044266.jpeg",
		},
		{
			ID:          "5",
			Name:        "Corona de Condolencias",
			Category:    "coronas",
			Price:       85.00,
			Stock:       4,
			MinStock:    2,
			Description: "Corona floral para expresar condolencias",
			ImageURL:    "https://images.pexels.com/photos/2072160/pexels-photo-2072160.jpeg",
		},
		{
			ID:          "6",
			Name:        "Caja de Tulipanes",
			Category:    "ramos",
			Price:       55.00,
			Stock:       10,
			MinStock:    4,
			Description: "Tulipanes importados en caja de regalo",
			ImageURL:    "https://images.pexels.com/photos/1028930/pexels-photo-1028930.jpeg",
		},
	}
}

func SeedCategories() []Category {
	return []Category{
		{ID: "ramos", Name: "Ramos"},
		{ID: "arreglos", Name: "Arreglos"},
		{ID: "plantas", Name: "Plantas"},
		{ID: "coronas", Name: "Coronas"},
	}
}
