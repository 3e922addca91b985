package tripay

// ClosedPaymentCode identifies a channel for single-use (closed) payments.
type ClosedPaymentCode string

// OpenPaymentCode identifies a channel for reusable (open) payments.
type OpenPaymentCode string

const (
	// Virtual Account
	MethodMaybankVA  ClosedPaymentCode = "MYBVA"
	MethodPermataVA  ClosedPaymentCode = "PERMATAVA"
	MethodBNIVA      ClosedPaymentCode = "BNIVA"
	MethodBRIVA      ClosedPaymentCode = "BRIVA"
	MethodMandiriVA  ClosedPaymentCode = "MANDIRIVA"
	MethodBCAVA      ClosedPaymentCode = "BCAVA"
	MethodSinarmasVA ClosedPaymentCode = "SMSVA"
	MethodMuamalatVA ClosedPaymentCode = "MUAMALATVA"
	MethodCIMBVA     ClosedPaymentCode = "CIMBVA"
	MethodSahabatVA  ClosedPaymentCode = "SAMPOERNAVA"
	MethodBSIVA      ClosedPaymentCode = "BSIVA"
	MethodDanamonVA  ClosedPaymentCode = "DANAMONVA"

	// Retail Outlet
	MethodAlfamart  ClosedPaymentCode = "ALFAMART"
	MethodIndomaret ClosedPaymentCode = "INDOMARET"
	MethodAlfamidi  ClosedPaymentCode = "ALFAMIDI"

	// E-Wallet
	MethodOVO       ClosedPaymentCode = "OVO"
	MethodShopeePay ClosedPaymentCode = "SHOPEEPAY"

	// QRIS
	MethodQRIS  ClosedPaymentCode = "QRIS"
	MethodQRIS2 ClosedPaymentCode = "QRIS2"
	MethodQRISC ClosedPaymentCode = "QRISC"
	MethodQRISD ClosedPaymentCode = "QRISD"
)

const (
	MethodBNIVAOpen     OpenPaymentCode = "BNIVAOP"
	MethodHanaVAOpen    OpenPaymentCode = "HANAVAOP"
	MethodDanamonVAOpen OpenPaymentCode = "DANAMONOP"
	MethodCIMBVAOpen    OpenPaymentCode = "CIMBVAOP"
	MethodBRIVAOpen     OpenPaymentCode = "BRIVAOP"
	MethodQRISOpen      OpenPaymentCode = "QRISOP"
	MethodQRISCOpen     OpenPaymentCode = "QRISCOP"
	MethodBSIVAOpen     OpenPaymentCode = "BSIVAOP"
)

var closedPaymentCodes = []ClosedPaymentCode{
	MethodMaybankVA, MethodPermataVA, MethodBNIVA, MethodBRIVA, MethodMandiriVA, MethodBCAVA,
	MethodSinarmasVA, MethodMuamalatVA, MethodCIMBVA, MethodSahabatVA, MethodBSIVA, MethodDanamonVA,
	MethodAlfamart, MethodIndomaret, MethodAlfamidi,
	MethodOVO, MethodShopeePay,
	MethodQRIS, MethodQRIS2, MethodQRISC, MethodQRISD,
}

var openPaymentCodes = []OpenPaymentCode{
	MethodBNIVAOpen, MethodHanaVAOpen, MethodDanamonVAOpen, MethodCIMBVAOpen,
	MethodBRIVAOpen, MethodQRISOpen, MethodQRISCOpen, MethodBSIVAOpen,
}

// ClosedPaymentCodes returns every closed payment code Tripay accepts.
func ClosedPaymentCodes() []ClosedPaymentCode {
	out := make([]ClosedPaymentCode, len(closedPaymentCodes))
	copy(out, closedPaymentCodes)
	return out
}

// OpenPaymentCodes returns every open payment code Tripay accepts.
func OpenPaymentCodes() []OpenPaymentCode {
	out := make([]OpenPaymentCode, len(openPaymentCodes))
	copy(out, openPaymentCodes)
	return out
}

func (c ClosedPaymentCode) Valid() bool {
	for _, code := range closedPaymentCodes {
		if c == code {
			return true
		}
	}
	return false
}

func (c OpenPaymentCode) Valid() bool {
	for _, code := range openPaymentCodes {
		if c == code {
			return true
		}
	}
	return false
}
