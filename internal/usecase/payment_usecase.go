package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freelance_ledger/internal/domain/entities"
	"freelance_ledger/internal/usecase/interfaces"
)

var (
	ErrInvalidJobID        = errors.New("invalid job id")
	ErrOnlyClientsCanPay   = errors.New("only clients can pay for jobs")
	ErrJobNotFound         = errors.New("job not found or not associated with the client")
	ErrJobAlreadyPaid      = errors.New("job is already paid")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPaymentConflict     = errors.New("payment rejected by a concurrent transaction")
)

// IPaymentUseCase executes the job-payment transaction.
//
// Money conservation: the contractor is credited exactly what the client is
// debited, and the job paid flip commits in the same atomic write. Any
// precondition failure leaves balances and the paid flag untouched.

type IPaymentUseCase interface {
	PayJob(ctx context.Context, jobID string, requester entities.Profile) error
}

type PaymentUseCase struct {
	jobRepo      interfaces.IJobRepository
	contractRepo interfaces.IContractRepository
	profileRepo  interfaces.IProfileRepository
	ledger       interfaces.ILedgerTransaction
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	jobRepo interfaces.IJobRepository,
	contractRepo interfaces.IContractRepository,
	profileRepo interfaces.IProfileRepository,
	ledger interfaces.ILedgerTransaction,
) *PaymentUseCase {
	return &PaymentUseCase{jobRepo: jobRepo, contractRepo: contractRepo, profileRepo: profileRepo, ledger: ledger}
}

// PayJob checks the payment preconditions, then hands the transfer to the
// ledger transaction. The pre-checks give precise errors on the common paths;
// the conditions inside the atomic write re-enforce them against races, so a
// losing concurrent payment surfaces as ErrJobAlreadyPaid (or
// ErrPaymentConflict), never as a double debit.
func (u *PaymentUseCase) PayJob(ctx context.Context, jobID string, requester entities.Profile) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}
	log.Printf("[payment][usecase] pay start job_id=%s profile_id=%s", jobID, requester.ID)

	if !requester.IsClient() {
		log.Printf("[payment][usecase] pay forbidden job_id=%s profile_id=%s type=%s", jobID, requester.ID, requester.Type)
		return ErrOnlyClientsCanPay
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		log.Printf("[payment][usecase] job lookup failed job_id=%s err=%v", jobID, err)
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}

	contract, err := u.contractRepo.GetByID(ctx, job.ContractID)
	if err != nil {
		log.Printf("[payment][usecase] contract lookup failed job_id=%s contract_id=%s err=%v", jobID, job.ContractID, err)
		return err
	}
	// The job is only payable by the contract's client while work is in
	// progress; anything else is indistinguishable from "not found" to the
	// caller.
	if contract.ID == "" || contract.ClientID != requester.ID || contract.Status != entities.ContractStatusInProgress {
		log.Printf("[payment][usecase] job not eligible job_id=%s contract_id=%s profile_id=%s", jobID, job.ContractID, requester.ID)
		return ErrJobNotFound
	}

	if job.Paid {
		return ErrJobAlreadyPaid
	}

	client, err := u.profileRepo.GetByID(ctx, requester.ID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrJobNotFound
	}
	if client.Balance < job.Price {
		log.Printf("[payment][usecase] insufficient balance job_id=%s profile_id=%s balance=%s price=%s", jobID, client.ID, client.Balance, job.Price)
		return ErrInsufficientBalance
	}

	ins := entities.PaymentInstruction{
		JobID:        job.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Price:        job.Price,
		PaymentDate:  time.Now().UTC(),
	}
	if err := u.ledger.ExecutePayment(ctx, ins); err != nil {
		log.Printf("[payment][usecase] ledger transaction failed job_id=%s err=%v", jobID, err)
		switch {
		case errors.Is(err, interfaces.ErrJobAlreadyPaid):
			return ErrJobAlreadyPaid
		case errors.Is(err, interfaces.ErrInsufficientBalance):
			return ErrInsufficientBalance
		case errors.Is(err, interfaces.ErrTransactionConflict):
			return ErrPaymentConflict
		default:
			return err
		}
	}

	log.Printf("[payment][usecase] pay success job_id=%s client_id=%s contractor_id=%s price=%s", job.ID, ins.ClientID, ins.ContractorID, job.Price)
	return nil
}
