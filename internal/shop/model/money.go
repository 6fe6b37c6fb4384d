package model

import "strconv"

// FormatPrice renders a whole-unit amount as a display price, using the
// Indian digit grouping the storefront shows (last three digits, then
// groups of two): 899 -> "₹899", 123456 -> "₹1,23,456".
func FormatPrice(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	out := digits[len(digits)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return sign + "₹" + head + "," + out
}
