package model

// ProductCondition describes the physical state a variant is sold in.
type ProductCondition string

const (
	ConditionNew         ProductCondition = "New"
	ConditionRefurbished ProductCondition = "Refurbished"
	ConditionUsed        ProductCondition = "Used"
	ConditionOpenBox     ProductCondition = "OpenBox"
)

// ParseProductCondition maps a request value to a known condition.
func ParseProductCondition(s string) (ProductCondition, bool) {
	switch ProductCondition(s) {
	case ConditionNew, ConditionRefurbished, ConditionUsed, ConditionOpenBox:
		return ProductCondition(s), true
	}
	return "", false
}

// StockStatus is derived from quantity, threshold and the pre-order
// flag. It is never persisted.
type StockStatus string

const (
	StockStatusInStock      StockStatus = "InStock"
	StockStatusLowStock     StockStatus = "LowStock"
	StockStatusOutOfStock   StockStatus = "OutOfStock"
	StockStatusPreOrder     StockStatus = "PreOrder"
	StockStatusDiscontinued StockStatus = "Discontinued"
)

// ParseStockStatus maps a request value to a known stock status.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock,
		StockStatusPreOrder, StockStatusDiscontinued:
		return StockStatus(s), true
	}
	return "", false
}
