package domain

// ValidCPF checks an 11-digit CPF: digits only, not a repeated digit, and
// both trailing check digits computed with the weighted mod-11 algorithm.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	digits := make([]int, 11)
	for i := 0; i < len(cpf); i++ {
		c := cpf[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}
	repeated := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}
	return checkDigit(digits, 10) == digits[9] && checkDigit(digits, 11) == digits[10]
}

// checkDigit weighs the weight-1 leading digits from weight down to 2.
func checkDigit(digits []int, weight int) int {
	sum := 0
	for i, d := range digits[:weight-1] {
		sum += d * (weight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
