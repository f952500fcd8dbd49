package cartera

// lot represents a single purchase of an asset, used for sell matching
// and realized gain calculations.
type lot struct {
	Quantity Quantity
	Price    Money // per-unit purchase price
}

type lots []lot

// cost returns the total purchase cost of the lot.
func (l lot) cost() Money { return l.Price.Mul(l.Quantity) }

// fifoCostOfSelling calculates the cost basis of selling a quantity
// using FIFO across the lots.
func (l lots) fifoCostOfSelling(quantityToSell Quantity) Money {
	var costOfSold Money
	for _, currentLot := range l {
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot.
			costOfSold = costOfSold.Add(currentLot.Price.Mul(quantityToSell))
			return costOfSold
		}
		// Full sale of this lot.
		costOfSold = costOfSold.Add(currentLot.cost())
		quantityToSell = quantityToSell.Sub(currentLot.Quantity)
	}
	return costOfSold
}
