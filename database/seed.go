package database

import (
	"strings"

	"comanda_manager/model"
)

// Adicionais reaproveitados por vários itens do cardápio
var (
	adOvo                = model.MenuItem{ID: "ad_ovo", Name: "OVO FRITO", Price: 3.50, Category: "ADICIONAL"}
	adCebolaCaramelizada = model.MenuItem{ID: "ad_cebola_caramelizada", Name: "CEBOLA CARAMELIZADA", Price: 4.00, Category: "ADICIONAL"}
	adGeleiaPimenta      = model.MenuItem{ID: "ad_geleia_pimenta", Name: "GELEIA DE PIMENTA", Price: 3.00, Category: "ADICIONAL"}
	adQueijoBrie         = model.MenuItem{ID: "ad_queijo_brie", Name: "QUEIJO BRIE", Price: 6.00, Category: "ADICIONAL"}
	adCogumelos          = model.MenuItem{ID: "ad_cogumelos", Name: "MIX DE COGUMELOS", Price: 5.50, Category: "ADICIONAL"}
)

var adicionalItems = []model.MenuItem{
	adOvo,
	adCebolaCaramelizada,
	adGeleiaPimenta,
	adQueijoBrie,
	adCogumelos,
}

var menuCategories = []model.MenuCategory{
	{
		Title: "SANDUÍCHES GOURMET",
		Items: []model.MenuItem{
			{
				ID:              "sg_classico",
				Name:            "CLÁSSICO DA CASA",
				Price:           32.90,
				Description:     "Pão artesanal, blend de carnes da casa, queijo prato, alface americana, tomate e maionese defumada.",
				Category:        "SANDUICHE_GOURMET",
				AvailableAddons: []model.MenuItem{adOvo, adCebolaCaramelizada, adQueijoBrie},
			},
			{
				ID:              "sg_vegetariano",
				Name:            "VEGETARIANO SABOROSO",
				Price:           28.50,
				Description:     "Pão brioche, hambúrguer de grão de bico, queijo coalho, rúcula, tomate seco e pesto de manjericão.",
				Category:        "SANDUICHE_GOURMET",
				AvailableAddons: []model.MenuItem{adOvo, adCogumelos, adGeleiaPimenta},
			},
			{
				ID:              "sg_frango_crispy",
				Name:            "FRANGO CROCANTE E PICANTE",
				Price:           30.90,
				Description:     "Pão australiano, frango crocante empanado, coleslaw, picles de pepino e maionese picante.",
				Category:        "SANDUICHE_GOURMET",
				AvailableAddons: []model.MenuItem{adOvo, adGeleiaPimenta},
			},
		},
	},
	{
		Title: "SALADAS FRESCAS",
		Items: []model.MenuItem{
			{
				ID:              "sd_caesar",
				Name:            "SALADA CAESAR COM FRANGO",
				Price:           26.00,
				Description:     "Mix de folhas, frango grelhado em cubos, croutons, parmesão e molho Caesar.",
				Category:        "SALADAS",
				AvailableAddons: []model.MenuItem{adOvo},
			},
			{
				ID:          "sd_caprese",
				Name:        "SALADA CAPRESE",
				Price:       24.50,
				Description: "Tomates frescos, muçarela de búfala, manjericão e molho pesto.",
				Category:    "SALADAS",
			},
		},
	},
	{
		Title: "ACOMPANHAMENTOS",
		Items: []model.MenuItem{
			{ID: "ac_fritas_trufadas", Name: "BATATA FRITA TRUFADA", Price: 18.00, Category: "ACOMPANHAMENTOS"},
			{ID: "ac_aneis_cebola", Name: "ANÉIS DE CEBOLA", Price: 16.00, Category: "ACOMPANHAMENTOS"},
			{ID: "ac_salada_da_casa", Name: "MINI SALADA DA CASA", Price: 12.00, Category: "ACOMPANHAMENTOS"},
		},
	},
	{
		Title: "BEBIDAS ESPECIAIS",
		Items: []model.MenuItem{
			{ID: "be_suco_natural", Name: "SUCO NATURAL DO DIA", Price: 9.00, Category: "BEBIDAS"},
			{ID: "be_soda_italiana", Name: "SODA ITALIANA (LIMÃO SICILIANO)", Price: 11.00, Category: "BEBIDAS"},
			{ID: "be_cha_gelado", Name: "CHÁ GELADO DA CASA", Price: 8.00, Category: "BEBIDAS"},
			{ID: "be_cafe_especial", Name: "CAFÉ ESPRESSO ESPECIAL", Price: 7.00, Category: "BEBIDAS"},
			{ID: "be_agua", Name: "ÁGUA MINERAL", Price: 5.00, Category: "BEBIDAS"},
		},
	},
}

// MenuCategories devolve o cardápio completo agrupado por categoria
func MenuCategories() []model.MenuCategory {
	return menuCategories
}

// AdicionalItems devolve todos os adicionais disponíveis
func AdicionalItems() []model.MenuItem {
	return adicionalItems
}

// AllMenuItems devolve todos os itens do cardápio, adicionais incluídos
func AllMenuItems() []model.MenuItem {
	items := []model.MenuItem{}
	for _, cat := range menuCategories {
		items = append(items, cat.Items...)
	}
	items = append(items, adicionalItems...)
	return items
}

// FindMenuItem busca um item ou adicional pelo id do cardápio
func FindMenuItem(id string) (model.MenuItem, bool) {
	for _, item := range AllMenuItems() {
		if item.ID == id {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

// FindMenuItemByNameAndPrice busca por nome (sem diferenciar maiúsculas)
// e preço exato. Usado na importação para enriquecer itens do relatório.
func FindMenuItemByNameAndPrice(name string, price float64) (model.MenuItem, bool) {
	for _, item := range AllMenuItems() {
		if strings.EqualFold(item.Name, name) && item.Price == price {
			return item, true
		}
	}
	return model.MenuItem{}, false
}
