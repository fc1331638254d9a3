package checkout

// GreetingCard is an add-on the customer can attach to an order. Cards are
// not inventory-tracked; the catalog is fixed.
type GreetingCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

var greetingCards = []GreetingCard{
	{ID: "gc1", Name: "Feliz Cumpleaños", Price: 5.00, Description: "Tarjeta colorida con mensaje de cumpleaños", Category: "birthday"},
	{ID: "gc2", Name: "Feliz Matrimonio", Price: 8.00, Description: "Elegante tarjeta para bodas", Category: "wedding"},
	{ID: "gc3", Name: "Feliz Aniversario", Price: 6.00, Description: "Romántica tarjeta de aniversario", Category: "anniversary"},
	{ID: "gc4", Name: "Mis Condolencias", Price: 4.00, Description: "Tarjeta de pésame con mensaje reconfortante", Category: "sympathy"},
	{ID: "gc5", Name: "Felicitaciones", Price: 5.50, Description: "Tarjeta de felicitaciones para logros", Category: "congratulations"},
	{ID: "gc6", Name: "Con Amor", Price: 7.00, Description: "Tarjeta romántica para expresar amor", Category: "love"},
	{ID: "gc7", Name: "Cumpleaños Especial", Price: 6.50, Description: "Tarjeta premium para cumpleaños importantes", Category: "birthday"},
	{ID: "gc8", Name: "Boda de Ensueño", Price: 10.00, Description: "Tarjeta de lujo para bodas especiales", Category: "wedding"},
}

func GreetingCards() []GreetingCard {
	return append([]GreetingCard(nil), greetingCards...)
}

func findGreetingCard(id string) (GreetingCard, bool) {
	for _, card := range greetingCards {
		if card.ID == id {
			return card, true
		}
	}
	return GreetingCard{}, false
}
