package launchpad

import (
	solanago "github.com/gagliardetto/solana-go"
)

var seed = struct {
	Global            []byte
	MintAuthority     []byte
	BondingCurve      []byte
	BondingCurveVault []byte
	UserPurchase      []byte
}{
	Global:            []byte("global"),
	MintAuthority:     []byte("mint_authority"),
	BondingCurve:      []byte("bonding_curve"),
	BondingCurveVault: []byte("bonding_curve_vault"),
	UserPurchase:      []byte("user_purchase"),
}

// DeriveGlobalAddress returns the address of the config singleton record.
func DeriveGlobalAddress() solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.Global}, ProgramID)
	return pub
}

// DeriveMintAuthority returns the authority that mints each sale's supply
// before minting is revoked.
func DeriveMintAuthority() solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.MintAuthority}, ProgramID)
	return pub
}

// DeriveBondingCurveAddress returns the sale record address for a mint. The
// same address owns the sale's token vault.
func DeriveBondingCurveAddress(mint solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.BondingCurve, mint.Bytes()}, ProgramID)
	return pub
}

// DeriveBondingCurveVault returns the native-currency vault address for a mint.
func DeriveBondingCurveVault(mint solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.BondingCurveVault, mint.Bytes()}, ProgramID)
	return pub
}

// DeriveUserPurchaseAddress returns the purchase record address for a
// (mint, buyer) pair.
func DeriveUserPurchaseAddress(mint, user solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.UserPurchase, mint.Bytes(), user.Bytes()}, ProgramID)
	return pub
}
