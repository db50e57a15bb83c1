package store

// Record keys. Each holds one JSON document.
const (
	KeyPlan             = "plan:current"
	KeyPlanLock         = "plan:lock"
	KeyChecked          = "shopping:checked"
	KeyExtras           = "shopping:extras"
	KeyCategoryOverride = "shopping:catoverride"
	KeyQuantityOverride = "shopping:qty"
	KeyOpenCategories   = "shopping:opencats"
	KeyCustomMeals      = "catalog:custom"
)
