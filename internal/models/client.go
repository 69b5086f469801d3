package models

type UserType string

const (
	UserTypeStudentProvider UserType = "STUDENT_PROVIDER" // Aluno prestador de serviços
	UserTypeClient          UserType = "CLIENT"
)

func (t UserType) Valid() bool {
	return t == UserTypeStudentProvider || t == UserTypeClient
}

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:40;not null" json:"firstName"`
	LastName  string `gorm:"size:40;not null" json:"lastName"`

	Email    string `gorm:"size:100;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`

	// CPF é opcional, mas único quando informado; o índice parcial
	// ignora clientes sem CPF
	CPF         string `gorm:"column:cpf;size:11;index:idx_clients_cpf,unique,where:cpf <> ''" json:"cpf"`
	PhoneNumber string `gorm:"size:11;not null" json:"phoneNumber"`

	UserType UserType `gorm:"size:20;not null" json:"userType"`

	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
