package model

import "errors"

var (
	// ErrNilEstimates indica que a rodada foi enviada sem lista de estimativas
	ErrNilEstimates = errors.New("lista de estimativas ausente")

	// ErrInvalidConfig indica valor inválido em variável de ambiente
	ErrInvalidConfig = errors.New("configuração inválida")
)
