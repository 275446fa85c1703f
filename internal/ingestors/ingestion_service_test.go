package ingestors_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"log-intel/internal/ingestors"
	"log-intel/internal/shared/filestorages"
	storagemocks "log-intel/internal/shared/filestorages/mocks"
	"log-intel/internal/shared/svcerrors"
	"log-intel/internal/stores"
	streammocks "log-intel/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validTSV = "10.0.0.1\t-\t804571304\tGET\t/shuttle/missions/sts-1\t200\t1024\n" +
	"10.0.0.2\t-\t804571305\tPOST\t/login\t401\t512\n"

func TestIngest_ErrLogFileNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	fileStorage.EXPECT().Get(ctx, "missing.tsv").Return(nil, filestorages.ErrFileNotFound)

	result, err := service.Ingest(ctx, "missing.tsv")

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_1000", svcErr.Code)
	assert.Equal(t, "not_found", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
	assert.Zero(t, tableStore.Current().Len(), "table must stay untouched on error")
}

func TestIngest_ErrStorageRead(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(nil, errors.New("disk gone"))

	_, err := service.Ingest(ctx, "logs.tsv")

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
}

func TestIngest_ReplacesTable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	body := validTSV + "short\trow\n" // malformed line is skipped, not fatal
	fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(io.NopCloser(strings.NewReader(body)), nil)
	producer.EXPECT().Produce(ctx, gomock.Any(), 2).Return(nil)

	result, err := service.Ingest(ctx, "logs.tsv")

	require.NoError(t, err)
	assert.Equal(t, 2, result.AcceptedCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.NotEmpty(t, result.TableVersion)

	table := tableStore.Current()
	assert.Equal(t, result.TableVersion, table.Version)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "10.0.0.1", table.Records[0].Host)
	assert.Equal(t, "GET /shuttle/missions/sts-1", table.Records[0].Request)
	assert.Equal(t, 401, table.Records[1].Status)
}

func TestIngest_EmptyFileStillReplacesTable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()

	// Load a populated table first, then ingest an empty file over it.
	fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(io.NopCloser(strings.NewReader(validTSV)), nil)
	producer.EXPECT().Produce(ctx, gomock.Any(), 2).Return(nil)
	first, err := service.Ingest(ctx, "logs.tsv")
	require.NoError(t, err)

	fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(io.NopCloser(strings.NewReader("")), nil)
	producer.EXPECT().Produce(ctx, gomock.Any(), 0).Return(nil)
	second, err := service.Ingest(ctx, "logs.tsv")
	require.NoError(t, err)

	assert.Equal(t, 0, second.AcceptedCount)
	assert.NotEqual(t, first.TableVersion, second.TableVersion)
	assert.Equal(t, second.TableVersion, tableStore.Current().Version)
	assert.Zero(t, tableStore.Current().Len(), "old records must not survive the swap")
}

func TestIngest_EventPublishFailureDoesNotFailIngest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(io.NopCloser(strings.NewReader(validTSV)), nil)
	producer.EXPECT().Produce(ctx, gomock.Any(), 2).Return(errors.New("queue closed"))

	// The table swap already happened; a cache-warming event that cannot
	// be published must not surface as an ingestion error.
	result, err := service.Ingest(ctx, "logs.tsv")

	require.NoError(t, err)
	assert.Equal(t, 2, result.AcceptedCount)
	assert.Equal(t, result.TableVersion, tableStore.Current().Version)
}

func TestUpload_PersistsThenIngests(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	body := strings.NewReader(validTSV)

	gomock.InOrder(
		fileStorage.EXPECT().Put(ctx, "logs.tsv", body).Return(&filestorages.PutResult{FileKey: "logs.tsv"}, nil),
		fileStorage.EXPECT().Get(ctx, "logs.tsv").Return(io.NopCloser(strings.NewReader(validTSV)), nil),
	)
	producer.EXPECT().Produce(ctx, gomock.Any(), 2).Return(nil)

	result, err := service.Upload(ctx, "logs.tsv", body)

	require.NoError(t, err)
	assert.Equal(t, 2, result.AcceptedCount)
	assert.Equal(t, 2, tableStore.Current().Len())
}

func TestUpload_ErrStoreFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileStorage := storagemocks.NewMockFileStorage(ctrl)
	producer := streammocks.NewMockTableReplacedProducer(ctrl)
	tableStore := stores.NewLogTableStore()
	service := ingestors.NewIngestionService(
		ingestors.NewRecordParser(), ingestors.NewFieldDeriver(), fileStorage, tableStore, producer)

	ctx := context.Background()
	body := strings.NewReader(validTSV)
	fileStorage.EXPECT().Put(ctx, "logs.tsv", body).Return(nil, errors.New("disk full"))

	_, err := service.Upload(ctx, "logs.tsv", body)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9001", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
}
