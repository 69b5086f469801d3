package validation

import (
	"github.com/nassaupro/marketplace-api/internal/models"
)

// ======================================================
// Validadores por campo (mensagens voltadas ao usuário)
// ======================================================

func CategoryName(name string) Violations {
	var v Violations
	if !NotBlank(name) {
		return append(v, "O nome da categoria não pode estar nulo ou em branco")
	}
	if !LengthBetween(name, 3, 100) {
		v = append(v, "O Nome da categoria deve conter entre 3 e 100 caracteres")
	}
	return v
}

func CategoryDescription(desc string) Violations {
	if !MaxLength(desc, 500) {
		return Violations{"A descrição da categoria não pode conter mais de 500 caracteres"}
	}
	return nil
}

func ClientFirstName(name string) Violations {
	var v Violations
	if !NotBlank(name) {
		return append(v, "O nome não pode estar nulo ou em branco")
	}
	if !LengthBetween(name, 3, 40) {
		v = append(v, "O Nome deve conter entre 3 e 40 caracteres")
	}
	if !LettersOnly(name) {
		v = append(v, "O nome só deve conter letras")
	}
	return v
}

func ClientLastName(name string) Violations {
	var v Violations
	if !NotBlank(name) {
		return append(v, "O sobrenome não pode estar nulo ou em branco")
	}
	if !LengthBetween(name, 3, 40) {
		v = append(v, "O sobrenome deve conter entre 3 e 40 caracteres")
	}
	if !LettersOnly(name) {
		v = append(v, "O sobrenome só deve conter letras")
	}
	return v
}

func ClientEmail(email string) Violations {
	var v Violations
	if !NotBlank(email) {
		return append(v, "O Email não pode estar nulo ou em branco")
	}
	if !ValidEmail(email) {
		v = append(v, "O campo 'email' não é um endereço de e-mail válido")
	}
	return v
}

func ClientPassword(password string) Violations {
	if !LengthBetween(password, 6, 255) {
		return Violations{"A senha deve conter no mínimo 6 caracteres"}
	}
	return nil
}

// ClientCPF valida o CPF quando informado. Campo opcional.
func ClientCPF(cpf string) Violations {
	if cpf == "" {
		return nil
	}
	if !DigitsOnly(cpf) {
		return Violations{"O CPF deve ser composto apenas por números, sem pontos ou espaços em branco"}
	}
	if len(cpf) != 11 {
		return Violations{"O tamanho do CPF não é válido"}
	}
	if !ValidCPF(cpf) {
		return Violations{"O CPF informado não é válido"}
	}
	return nil
}

func ClientPhoneNumber(phone string) Violations {
	var v Violations
	if !NotBlank(phone) {
		return append(v, "O celular não pode estar nulo ou em branco")
	}
	if !DigitsOnly(phone) {
		v = append(v, "O celular só deve conter números")
	}
	if !LengthBetween(phone, 11, 11) {
		v = append(v, "O celular deve conter 11 números")
	}
	return v
}

func ClientUserType(t models.UserType) Violations {
	if !t.Valid() {
		return Violations{"O tipo de usuário deve ser STUDENT_PROVIDER ou CLIENT"}
	}
	return nil
}

func ServiceName(name string) Violations {
	if !NotBlank(name) {
		return Violations{"O nome do serviço não pode estar nulo ou em branco"}
	}
	return ServiceNameLength(name)
}

// ServiceNameLength cobre apenas a regra de tamanho; o nome em branco
// fica a cargo do chamador
func ServiceNameLength(name string) Violations {
	if !LengthBetween(name, 3, 100) {
		return Violations{"O Nome do serviço deve conter entre 3 e 100 caracteres"}
	}
	return nil
}

func ServiceDescription(desc string) Violations {
	if !MaxLength(desc, 500) {
		return Violations{"A descrição do serviço não pode conter mais de 500 caracteres"}
	}
	return nil
}

func ServicePrice(price float64) Violations {
	if price < 0 {
		return Violations{"O preço do serviço não pode ser negativo"}
	}
	return nil
}

// ======================================================
// Rotinas por entidade: coletam TODAS as violações,
// sem interromper na primeira falha.
// ======================================================

func CheckCategory(c *models.Category) Violations {
	var v Violations
	v = append(v, CategoryName(c.Name)...)
	v = append(v, CategoryDescription(c.Description)...)
	return v
}

func CheckClient(c *models.Client) Violations {
	var v Violations
	v = append(v, ClientFirstName(c.FirstName)...)
	v = append(v, ClientLastName(c.LastName)...)
	v = append(v, ClientEmail(c.Email)...)
	v = append(v, ClientPassword(c.Password)...)
	v = append(v, ClientCPF(c.CPF)...)
	v = append(v, ClientPhoneNumber(c.PhoneNumber)...)
	v = append(v, ClientUserType(c.UserType)...)
	return v
}

func CheckService(s *models.Service) Violations {
	var v Violations
	v = append(v, ServiceName(s.Name)...)
	v = append(v, ServiceDescription(s.Description)...)
	v = append(v, ServicePrice(s.Price)...)
	if s.CategoryID == 0 {
		v = append(v, "O serviço deve estar vinculado a uma categoria")
	}
	if s.ClientID == 0 {
		v = append(v, "O serviço deve estar vinculado a um cliente")
	}
	return v
}
