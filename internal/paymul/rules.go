package paymul

import "fmt"

// Means is the PAI payment means code selecting the payment rail.
type Means string

// Values from section 2.8.5 "PAI, Payment Instructions" of the HSBC PAYMUL
// implementation guide.
const (
	MeansACHOrEZone      Means = "2"
	MeansPriorityPayment Means = "52"
	MeansFasterPayment   Means = "FPS"
)

// Charges is the FCA allocation code deciding who bears the transfer fees.
type Charges string

const (
	ChargesPayee   Charges = "13"
	ChargesEachOwn Charges = "14"
	ChargesPayer   Charges = "15"
)

// ChannelIntraCompany routes a payment between accounts of the same company.
const ChannelIntraCompany = "Z24"

var meansByPaymentType = map[string]Means{
	"ACH or EZONE":     MeansACHOrEZone,
	"Faster Payment":   MeansFasterPayment,
	"Priority Payment": MeansPriorityPayment,
}

// MeansFor maps a payment type label to its means code.
func MeansFor(paymentType string) (Means, error) {
	if means, ok := meansByPaymentType[paymentType]; ok {
		return means, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPaymentType, paymentType)
}

// ChargesFor picks the charges code from the beneficiary account kind: IBAN
// destinations share charges, every other kind leaves them to the payee.
func ChargesFor(beneficiary Account) Charges {
	if beneficiary.Kind() == KindIBAN {
		return ChargesEachOwn
	}
	return ChargesPayee
}
