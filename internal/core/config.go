package core

type Config struct {
	SequenceCode     string `envconfig:"PAYMUL_SEQUENCE_CODE" default:"bank.paymul.identifier"`
	MaxExecutionDays int    `envconfig:"PAYMUL_MAX_EXECUTION_DAYS" default:"30"`
}
