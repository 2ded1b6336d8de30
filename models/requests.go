// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package models

// Worker request payloads. Field names mirror the wire contract the
// downstream workers expect; the gateway shapes inbound HTTP bodies into
// these before publishing.

// ByUsernameRequest asks the user worker for a record by username
// (type "get-byUsername").
type ByUsernameRequest struct {
	Username string `json:"username"`
}

// ByIDRequest asks a worker for a record by its id (type "get-byId",
// "delete-User", ...).
type ByIDRequest struct {
	ID string `json:"_id"`
}

// RegisterUserRequest creates a new user account (type "register").
type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EditUserRequest patches mutable user attributes (type "edit-User").
type EditUserRequest struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ChangeEmailRequest updates the account email (type "change-email"). The
// worker resets the confirmation flag and triggers a new verification mail.
type ChangeEmailRequest struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// ChangePasswordRequest changes the account password (types
// "change-Password" and "change-Password-Force").
type ChangePasswordRequest struct {
	ID              string `json:"_id"`
	OldPassword     string `json:"oldPassword,omitempty"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetTokenRequest persists (or clears, when Token is empty) the
// password-reset token on the user record (type "password-reset").
type ResetTokenRequest struct {
	ID    string `json:"_id"`
	Token string `json:"token,omitempty"`
}

// VerifyUserRequest marks an account as confirmed (type "verify-User").
type VerifyUserRequest struct {
	ID string `json:"_id"`
}

// CategoryRequest covers the category worker operations (types "get-all",
// "get-Category", "add", "edit-Category", "delete-Category").
type CategoryRequest struct {
	ID       string `json:"_id,omitempty"`
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	IconID   int    `json:"icon_id,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	Archived bool   `json:"archived,omitempty"`
}

// TransactionRequest covers the transaction worker operations (types
// "get-Transaction", "add-Transaction", "edit-Transaction",
// "delete-Transaction").
type TransactionRequest struct {
	ID                string           `json:"_id,omitempty"`
	UserID            string           `json:"user_id"`
	WalletID          string           `json:"wallet_id,omitempty"`
	Category          *CategoryRequest `json:"category,omitempty"`
	Concept           string           `json:"concept,omitempty"`
	Amount            float64          `json:"amount,omitempty"`
	TransactionDate   string           `json:"transactionDate,omitempty"`
	ExcludeFromReport bool             `json:"excludeFromReport,omitempty"`
}

// WalletRequest covers the wallet operations served by the transaction
// worker (types "get-Wallets", "get-Wallet", "add-Wallet", "edit-Wallet",
// "delete-Wallet").
type WalletRequest struct {
	ID       string  `json:"_id,omitempty"`
	UserID   string  `json:"user_id"`
	Name     string  `json:"name,omitempty"`
	Money    float64 `json:"money,omitempty"`
	Currency string  `json:"currency,omitempty"`
	IconID   int     `json:"icon_id,omitempty"`
}

// TransferRequest moves money between two wallets producing a linked pair of
// transactions (type "transfer-Wallet").
type TransferRequest struct {
	UserID          string  `json:"user_id"`
	FromID          string  `json:"from_id"`
	ToID            string  `json:"to_id"`
	Amount          float64 `json:"amount"`
	Concept         string  `json:"concept,omitempty"`
	TransactionDate string  `json:"transactionDate,omitempty"`
}

// GetTransactionsRequest lists the transactions of a wallet for a month
// (type "get-Transactions"). DataMonth is interpreted by the worker, "-1"
// meaning the current month.
type GetTransactionsRequest struct {
	ID        string `json:"_id"`
	UserID    string `json:"user_id"`
	DataMonth string `json:"datamonth"`
}

// DebtRequest covers the debt worker operations (types "add", "get-Debt",
// "edit-Debt", "delete-Debt").
type DebtRequest struct {
	ID      string  `json:"_id,omitempty"`
	UserID  string  `json:"user_id"`
	Loaner  string  `json:"loaner,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
	Concept string  `json:"concept,omitempty"`
	Date    string  `json:"date,omitempty"`
	Deduct  bool    `json:"deduct,omitempty"`
}

// DebtPaymentRequest registers a payment against a debt (type
// "debt-payment"), optionally deducting the amount from a wallet.
type DebtPaymentRequest struct {
	UserID   string  `json:"user_id"`
	DebtID   string  `json:"debt_id"`
	Amount   float64 `json:"amount"`
	WalletID string  `json:"wallet_id,omitempty"`
}
