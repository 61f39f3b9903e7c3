package fixture

import "strconv"

// Row is one synthetic payment of the fixture file.
// alglobo reads the two amounts as airline and hotel amount.
type Row struct {
	ID            int
	AirlineAmount string
	HotelAmount   string
}

// NewRow returns the row for the given id. Both amounts are the id with two decimals.
func NewRow(id int) Row {
	amount := FormatAmount(id)
	return Row{
		ID:            id,
		AirlineAmount: amount,
		HotelAmount:   amount,
	}
}

// FormatAmount renders n as a fixed point number with exactly two decimals, e.g. 3 -> "3.00"
func FormatAmount(n int) string {
	return strconv.FormatFloat(float64(n), 'f', 2, 64)
}

// Record returns the CSV fields of the row
func (r Row) Record() []string {
	return []string{strconv.Itoa(r.ID), r.AirlineAmount, r.HotelAmount}
}
