package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do usuário carregadas no token de acesso.
// Os tokens são emitidos pelo provedor de identidade e apenas validados aqui.
type Claims struct {
	UserID     int
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
