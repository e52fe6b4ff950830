package model

// MenuItem é um item do cardápio, dado de referência imutável
type MenuItem struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Price           float64    `json:"price"`
	Category        string     `json:"category"`
	SubName         string     `json:"subName,omitempty"`
	AvailableAddons []MenuItem `json:"availableAddons,omitempty"`
}

// HasAddons indica se o item possui adicionais configuráveis
func (m MenuItem) HasAddons() bool {
	return len(m.AvailableAddons) > 0
}

type MenuCategory struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}
