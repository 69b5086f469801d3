package validation

// ValidCPF confere os dois dígitos verificadores do CPF.
// Espera uma string de exatamente 11 dígitos numéricos.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 || !DigitsOnly(cpf) {
		return false
	}

	// Sequências de um único dígito repetido (ex: 11111111111)
	// passam no cálculo, mas não são CPFs válidos.
	repeated := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	return checkDigit(cpf, 9) == int(cpf[9]-'0') &&
		checkDigit(cpf, 10) == int(cpf[10]-'0')
}

// checkDigit calcula o dígito verificador sobre os primeiros n dígitos,
// com pesos decrescentes a partir de n+1.
func checkDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
