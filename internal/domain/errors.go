package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes se muestran al operador del caixa.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrLoginNotFound      = errors.New("usuário não encontrado")
	ErrWrongPassword      = errors.New("senha incorreta")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso restrito")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrReceivedBelowTotal = errors.New("o valor recebido é inferior ao total da venda")
	ErrEmptyCart          = errors.New("carrinho vazio")
	ErrPasswordMismatch   = errors.New("as senhas não coincidem")
)
