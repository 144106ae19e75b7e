package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

var errDB = errors.New("db error")

func day(y, m, d int) calendar.Date {
	return calendar.New(y, time.Month(m), d)
}

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   error
	}

	valid := transaction.CreateParams{
		Type:     transaction.TypeExpense,
		Amount:   400,
		Note:     "groceries",
		Category: "food",
		Date:     day(2026, 10, 15),
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: valid},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().Load(gomock.Any()).Return(nil, nil)
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
						require.Len(t, txs, 1)
						assert.Equal(t, "groceries", txs[0].Note)
						return nil
					})
			},
		},
		{
			name: "MissingAmount",
			args: args{params: transaction.CreateParams{
				Type: transaction.TypeIncome, Category: "salary", Date: day(2026, 10, 1),
			}},
			wantErr: money.ErrInvalidAmount,
		},
		{
			name: "MissingCategory",
			args: args{params: transaction.CreateParams{
				Type: transaction.TypeIncome, Amount: 10, Date: day(2026, 10, 1),
			}},
			wantErr: transaction.ErrMissingField,
		},
		{
			name: "MissingDate",
			args: args{params: transaction.CreateParams{
				Type: transaction.TypeIncome, Amount: 10, Category: "salary",
			}},
			wantErr: transaction.ErrMissingField,
		},
		{
			name:    "InvalidType",
			args:    args{params: transaction.CreateParams{Type: "refund", Amount: 10, Category: "salary", Date: day(2026, 10, 1)}},
			wantErr: transaction.ErrInvalidType,
		},
		{
			name: "RepoError",
			args: args{params: valid},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().Load(gomock.Any()).Return(nil, nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errDB)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, nil)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestService_Create_PrependsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	older := &transaction.Transaction{ID: uuid.New(), Type: transaction.TypeIncome, Amount: 1000, Category: "salary", Date: day(2026, 9, 1)}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return([]*transaction.Transaction{older}, nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 2)
			assert.Equal(t, older.ID, txs[1].ID)
			return nil
		})

	notifier := ledger.NewNotifier()

	var events []ledger.Event
	notifier.Subscribe(func(e ledger.Event) { events = append(events, e) })

	svc := transaction.NewService(repo, notifier)
	created, err := svc.Create(context.Background(), transaction.CreateParams{
		Type: transaction.TypeExpense, Amount: 400, Category: "food", Date: day(2026, 10, 2),
	})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), transaction.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)

	require.Len(t, events, 1)
	assert.Equal(t, ledger.Created, events[0].Kind)
	assert.Equal(t, []uuid.UUID{created.ID}, events[0].IDs)
}

func TestService_Create_SaveFailureKeepsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := transaction.NewService(repo, nil)
	_, err := svc.Create(context.Background(), transaction.CreateParams{
		Type: transaction.TypeExpense, Amount: 1, Category: "food", Date: day(2026, 10, 2),
	})
	require.Error(t, err)

	all, err := svc.List(context.Background(), transaction.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_Create_Learns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	learner := transaction.NewMockLearner(ctrl)
	learner.EXPECT().Learn(gomock.Any(), "metro card", "transport").Return(nil)

	svc := transaction.NewService(repo, nil).WithLearner(learner)
	_, err := svc.Create(context.Background(), transaction.CreateParams{
		Type: transaction.TypeExpense, Amount: 20, Note: "metro card", Category: "transport", Date: day(2026, 10, 2),
	})
	require.NoError(t, err)
}

func TestService_Delete_UsesIDUnderActiveFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := &transaction.Transaction{ID: uuid.New(), Type: transaction.TypeIncome, Amount: 1000, Note: "salary", Category: "salary", Date: day(2026, 10, 1)}
	b := &transaction.Transaction{ID: uuid.New(), Type: transaction.TypeExpense, Amount: 50, Note: "coffee beans", Category: "food", Date: day(2026, 10, 2)}
	c := &transaction.Transaction{ID: uuid.New(), Type: transaction.TypeExpense, Amount: 30, Note: "coffee shop", Category: "food", Date: day(2026, 10, 3)}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return([]*transaction.Transaction{a, b, c}, nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 2)
			assert.Equal(t, a.ID, txs[0].ID)
			assert.Equal(t, b.ID, txs[1].ID)
			return nil
		})

	svc := transaction.NewService(repo, nil)
	ctx := context.Background()

	shown, err := svc.List(ctx, transaction.ListFilter{Search: "coffee"})
	require.NoError(t, err)
	require.Len(t, shown, 2)

	// Second row on screen is c; in the master sequence it sits at index 2.
	require.NoError(t, svc.Delete(ctx, shown[1].ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, nil)

	svc := transaction.NewService(repo, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), transaction.ErrNotFound)
}

func TestService_List_NoResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := []*transaction.Transaction{
		{ID: uuid.New(), Type: transaction.TypeIncome, Amount: 1000, Category: "salary", Date: day(2026, 10, 1)},
		{ID: uuid.New(), Type: transaction.TypeExpense, Amount: 400, Note: "rent", Category: "bills", Date: day(2026, 10, 2)},
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(txs, nil)

	svc := transaction.NewService(repo, nil)
	ctx := context.Background()

	got, err := svc.List(ctx, transaction.ListFilter{Search: "zzz-not-there"})
	require.NoError(t, err)
	assert.Empty(t, got)

	all, err := svc.List(ctx, transaction.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_List_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("list error"))

	svc := transaction.NewService(repo, nil)
	_, err := svc.List(context.Background(), transaction.ListFilter{})
	assert.Error(t, err)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Len(2)).Return(nil)

	svc := transaction.NewService(repo, nil)

	txs, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
		{Type: transaction.TypeExpense, Amount: 10, Category: "food", Date: day(2026, 1, 15)},
		{Type: transaction.TypeIncome, Amount: 20, Category: "gift", Date: day(2026, 1, 16)},
	})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 10.0, txs[0].Amount)
	assert.Equal(t, transaction.TypeIncome, txs[1].Type)
}

func TestService_CreateBatch_InvalidEntryStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo, nil)

	_, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
		{Type: transaction.TypeExpense, Amount: 10, Category: "food", Date: day(2026, 1, 15)},
		{Type: transaction.TypeExpense, Category: "food", Date: day(2026, 1, 15)},
	})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}
