package redisx

const (
	// Inventory snapshot: full {products, categories} aggregate as JSON.
	KeyInventory = "estoque_app_dados"

	// User directory snapshot: {"usuarios": [...]} as JSON.
	KeyUsers = "user-storage"
)
