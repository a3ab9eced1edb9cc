package core

import (
	"context"
	"fmt"
	"time"

	"paymulexport/internal/paymul"
)

type Service struct {
	sequenceRepository SequenceRepository
	logger             Logger
	config             Config
	now                func() time.Time
}

func NewService(sequenceRepo SequenceRepository, logger Logger, config Config) Service {
	return Service{
		sequenceRepository: sequenceRepo,
		logger:             logger,
		config:             config,
		now:                time.Now,
	}
}

// WithClock returns a copy of the service reading the time from now.
func (s Service) WithClock(now func() time.Time) Service {
	s.now = now
	return s
}

func (s Service) ExportPaymul(ctx context.Context, order PaymentOrder) (Export, error) {
	if len(order.Lines) == 0 {
		return Export{}, ErrEmptyPaymentOrder
	}

	now := s.now()

	execDate, err := ResolveExecutionDate(order, now, s.config.MaxExecutionDays)
	if err != nil {
		return Export{}, err
	}

	reference := order.BatchReference
	if reference == "" {
		reference = DefaultBatchReference(order.Reference)
	}

	source := order.SourceAccount
	s.logger.DebugContext(ctx, "Creating source account",
		"holder", source.HolderName(),
		"country", source.CountryCode,
		"account", source.AccountNumber,
	)

	debit, err := paymul.Classify(source.Descriptor(), paymul.Origin{
		Country:         source.CountryCode,
		IsOriginAccount: true,
	})
	if err != nil {
		return Export{}, fmt.Errorf("source account: %w", err)
	}
	if debit.Kind() != paymul.KindUK {
		return Export{}, fmt.Errorf("%w: company bank account must have a UK account number (not %s)",
			paymul.ErrInvalidSourceAccount, debit.Kind())
	}

	transactions := make([]paymul.Transaction, 0, len(order.Lines))
	for _, line := range order.Lines {
		transaction, err := s.createTransaction(ctx, order, line)
		if err != nil {
			return Export{}, fmt.Errorf("payment line %q: %w", line.Name, err)
		}
		transactions = append(transactions, transaction)
	}

	batch, err := paymul.NewBatch(execDate, reference, debit, source.NameAddress(), transactions...)
	if err != nil {
		return Export{}, err
	}

	var (
		interchange paymul.Interchange
		content     []byte
	)

	encodeCallback := func(reference string) error {
		ic, err := paymul.NewBuilder(source.ClientID, reference, now).
			AddBatch(batch).
			Build()
		if err != nil {
			return err
		}

		encoded, err := paymul.Encode(ic)
		if err != nil {
			return err
		}

		interchange, content = ic, encoded
		return nil
	}

	if err = s.issueReference(ctx, encodeCallback); err != nil {
		return Export{}, err
	}

	s.logger.InfoContext(ctx, "PAYMUL file created",
		"interchange_reference", interchange.Reference(),
		"transactions", batch.Len(),
		"total", batch.Amount().StringFixed(2),
	)

	return Export{
		FileName:             FileName(source.AccountNumber, execDate, batch.Reference()),
		Content:              content,
		Reference:            batch.Reference(),
		InterchangeReference: interchange.Reference(),
		ExecutionDate:        execDate,
		TotalAmount:          batch.Amount(),
		TransactionCount:     batch.Len(),
	}, nil
}

func (s Service) createTransaction(ctx context.Context, order PaymentOrder, line PaymentLine) (paymul.Transaction, error) {
	if line.Beneficiary == nil || !line.Beneficiary.HasHolder() {
		return paymul.Transaction{}, fmt.Errorf("%w: both destination address and account number must be provided",
			paymul.ErrMissingBeneficiaryAccount)
	}

	s.logger.DebugContext(ctx, "Creating beneficiary account",
		"holder", line.Beneficiary.HolderName(),
		"country", line.Beneficiary.CountryCode,
	)

	beneficiary, err := paymul.Classify(line.Beneficiary.Descriptor(), paymul.Origin{
		Country: order.SourceAccount.CountryCode,
	})
	if err != nil {
		return paymul.Transaction{}, err
	}

	return paymul.NewTransaction(paymul.TransactionParams{
		Amount:            line.Amount,
		Currency:          line.Currency,
		Beneficiary:       &beneficiary,
		PaymentType:       order.PaymentType,
		NameAddress:       line.Beneficiary.NameAddress(),
		CustomerReference: line.Name,
		PaymentReference:  line.Name,
	})
}

// issueReference takes the next interchange reference and hands it to use.
// The counter only advances when use succeeds, so a file the bank would
// reject never consumes a reference.
func (s Service) issueReference(ctx context.Context, use func(reference string) error) error {
	var useErr error

	transactionCallback := func(r SequenceRepository) error {
		sequence, err := r.GetSequence(ctx, s.config.SequenceCode)
		if err != nil {
			return err
		}

		if useErr = use(sequence.Issue()); useErr != nil {
			return useErr
		}

		return r.UpdateSequence(ctx, sequence)
	}

	if err := s.sequenceRepository.Atomic(ctx, transactionCallback); err != nil {
		if useErr != nil {
			return useErr
		}
		return fmt.Errorf("issue interchange reference: %w", err)
	}

	return nil
}
