package model

// AddonSelection associa um adicional do cardápio a uma quantidade (>= 1)
type AddonSelection struct {
	AddonItem MenuItem `json:"addonItem"`
	Quantity  int      `json:"quantity"`
}

// OrderItem é uma cópia de MenuItem dentro da comanda atual.
// InstanceID é único por linha: o mesmo item do cardápio pode aparecer
// várias vezes com adicionais ou observações diferentes.
type OrderItem struct {
	MenuItem
	InstanceID     string           `json:"instanceId"`
	Quantity       int              `json:"quantity"`
	SelectedAddons []AddonSelection `json:"selectedAddons,omitempty"`
	Observation    string           `json:"observation,omitempty"`
}

type AddItemInput struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
}

type ConfirmAddonsInput struct {
	Addons []AddonQuantityInput `json:"addons" validate:"dive"`
}

type AddonQuantityInput struct {
	AddonID  string `json:"addonId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

type UpdateObservationInput struct {
	Observation string `json:"observation"`
}
