package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"
)

var (
	ErrOnlyClientsCanDeposit = errors.New("only clients can deposit into their account")
	ErrDepositNotOwnAccount  = errors.New("clients can only deposit into their own account")
	ErrInvalidDepositAmount  = errors.New("deposit amount must be greater than zero")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrDepositConflict       = errors.New("deposit rejected by a concurrent transaction")
)

// DepositCapExceededError reports a deposit above 25% of the client's unpaid
// in-progress exposure; Cap is included so handlers can echo the allowed
// maximum in the response message.
type DepositCapExceededError struct {
	Cap entities.Cents
}

func (e *DepositCapExceededError) Error() string {
	return fmt.Sprintf("deposit amount exceeds the maximum allowed (%s)", e.Cap)
}

// IDepositUseCase applies a bounded deposit to a client's balance.

type IDepositUseCase interface {
	Deposit(ctx context.Context, targetProfileID string, requester entities.Profile, amount float64) (entities.Cents, error)
}

type DepositUseCase struct {
	profileRepo  interfaces.IProfileRepository
	contractRepo interfaces.IContractRepository
	jobRepo      interfaces.IJobRepository
	ledger       interfaces.ILedgerTransaction
	gateway      interfaces.IPaymentGateway
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

// NewDepositUseCase wires the deposit flow. gateway may be nil; deposits then
// credit the balance directly without an external card capture.
func NewDepositUseCase(
	profileRepo interfaces.IProfileRepository,
	contractRepo interfaces.IContractRepository,
	jobRepo interfaces.IJobRepository,
	ledger interfaces.ILedgerTransaction,
	gateway interfaces.IPaymentGateway,
) *DepositUseCase {
	return &DepositUseCase{profileRepo: profileRepo, contractRepo: contractRepo, jobRepo: jobRepo, ledger: ledger, gateway: gateway}
}

// Deposit validates the request, computes the cap from the client's current
// unpaid in-progress exposure and credits the balance. The profile version
// read before the exposure query guards the credit, so a balance write that
// lands in between surfaces as ErrDepositConflict instead of a lost update.
// Returns the new balance.
func (u *DepositUseCase) Deposit(ctx context.Context, targetProfileID string, requester entities.Profile, amount float64) (entities.Cents, error) {
	targetProfileID = strings.TrimSpace(targetProfileID)
	log.Printf("[deposit][usecase] deposit start target=%s profile_id=%s amount=%.2f", targetProfileID, requester.ID, amount)

	if !requester.IsClient() {
		return 0, ErrOnlyClientsCanDeposit
	}
	if targetProfileID == "" || targetProfileID != requester.ID {
		return 0, ErrDepositNotOwnAccount
	}
	cents, err := entities.ParseAmount(amount)
	if err != nil {
		return 0, ErrInvalidDepositAmount
	}

	client, err := u.profileRepo.GetByID(ctx, targetProfileID)
	if err != nil {
		log.Printf("[deposit][usecase] profile lookup failed target=%s err=%v", targetProfileID, err)
		return 0, err
	}
	if client.ID == "" {
		return 0, ErrProfileNotFound
	}

	totalToPay, err := u.unpaidExposure(ctx, client.ID)
	if err != nil {
		log.Printf("[deposit][usecase] exposure query failed target=%s err=%v", targetProfileID, err)
		return 0, err
	}

	// Cap at a quarter of what the client currently owes in flight. Integer
	// floor to the cent; zero exposure means no deposit is allowed.
	maxDeposit := totalToPay / 4
	if cents > maxDeposit {
		log.Printf("[deposit][usecase] cap exceeded target=%s amount=%s cap=%s exposure=%s", targetProfileID, cents, maxDeposit, totalToPay)
		return 0, &DepositCapExceededError{Cap: maxDeposit}
	}

	var fundingID string
	if u.gateway != nil {
		fundingID, err = u.captureFunding(ctx, client, cents)
		if err != nil {
			log.Printf("[deposit][usecase] funding capture failed target=%s err=%v", targetProfileID, err)
			return 0, err
		}
	}

	newBalance, err := u.ledger.CreditBalance(ctx, client.ID, cents, client.Version)
	if err != nil {
		log.Printf("[deposit][usecase] credit failed target=%s err=%v", targetProfileID, err)
		if fundingID != "" {
			u.refundFunding(ctx, client.ID, fundingID)
		}
		if errors.Is(err, interfaces.ErrStaleProfileVersion) || errors.Is(err, interfaces.ErrTransactionConflict) {
			return 0, ErrDepositConflict
		}
		return 0, err
	}

	log.Printf("[deposit][usecase] deposit success target=%s amount=%s new_balance=%s", targetProfileID, cents, newBalance)
	return newBalance, nil
}

// unpaidExposure sums the prices of unpaid jobs on the client's in_progress
// contracts.
func (u *DepositUseCase) unpaidExposure(ctx context.Context, clientID string) (entities.Cents, error) {
	contracts, err := u.contractRepo.ListByProfileID(ctx, clientID)
	if err != nil {
		return 0, err
	}

	var contractIDs []string
	for _, c := range contracts {
		if c.ClientID == clientID && c.Status == entities.ContractStatusInProgress {
			contractIDs = append(contractIDs, c.ID)
		}
	}
	if len(contractIDs) == 0 {
		return 0, nil
	}

	jobs, err := u.jobRepo.ListUnpaidByContractIDs(ctx, contractIDs)
	if err != nil {
		return 0, err
	}

	var total entities.Cents
	for _, j := range jobs {
		total += j.Price
	}
	return total, nil
}

// captureFunding charges the deposit amount through the configured card
// gateway before the ledger credit; a declined or failed capture aborts the
// deposit. Returns the provider payment id for compensation.
func (u *DepositUseCase) captureFunding(ctx context.Context, client entities.Profile, amount entities.Cents) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": amount.Float(),
		"description":        fmt.Sprintf("Balance deposit for profile %s", client.ID),
		"external_reference": client.ID,
	})
	if err != nil {
		return "", err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", err
	}
	log.Printf("[deposit][usecase] funding captured target=%s provider_payment_id=%s provider_status=%s", client.ID, providerPaymentID, providerStatus)
	return providerPaymentID, nil
}

// refundFunding cancels a captured payment whose ledger credit did not land.
// A capture with no matching credit must not survive the error branch; if the
// cancel itself fails the id is logged for manual reconciliation.
func (u *DepositUseCase) refundFunding(ctx context.Context, profileID, providerPaymentID string) {
	if err := u.gateway.CancelPayment(ctx, providerPaymentID); err != nil {
		log.Printf("[deposit][usecase] funding compensation failed target=%s provider_payment_id=%s err=%v", profileID, providerPaymentID, err)
		return
	}
	log.Printf("[deposit][usecase] funding compensated target=%s provider_payment_id=%s", profileID, providerPaymentID)
}
