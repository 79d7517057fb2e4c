package settlement

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	publisher "github.com/lunarpay/settlement-reward-service/internal/infrastructure/kafka"
)

type fieldChange struct {
	field    string
	oldValue string
	newValue string
}

func newBatchID() (string, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}
	return idGenerator(), nil
}

// diffStringMap merges the patch into the current map and returns one change
// per key whose value actually differs. Keys absent from the patch stay.
func diffStringMap(current, patch map[string]string) (map[string]string, []fieldChange) {
	merged := make(map[string]string, len(current)+len(patch))
	for key, value := range current {
		merged[key] = value
	}

	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var changes []fieldChange
	for _, key := range keys {
		newValue := patch[key]
		oldValue, exists := merged[key]
		if exists && oldValue == newValue {
			continue
		}
		changes = append(changes, fieldChange{field: key, oldValue: oldValue, newValue: newValue})
		merged[key] = newValue
	}
	return merged, changes
}

func diffInt64Map(current, patch map[string]int64) (map[string]int64, []fieldChange) {
	merged := make(map[string]int64, len(current)+len(patch))
	for key, value := range current {
		merged[key] = value
	}

	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var changes []fieldChange
	for _, key := range keys {
		newValue := patch[key]
		oldValue, exists := merged[key]
		if exists && oldValue == newValue {
			continue
		}
		change := fieldChange{field: key, newValue: strconv.FormatInt(newValue, 10)}
		if exists {
			change.oldValue = strconv.FormatInt(oldValue, 10)
		}
		changes = append(changes, change)
		merged[key] = newValue
	}
	return merged, changes
}

func validateRateConfigs(configs map[string]string) error {
	for code, value := range configs {
		if code == "" {
			return fmt.Errorf("%w: rate code must not be empty", domain.ErrValidation)
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: rate %s is not a decimal: %q", domain.ErrValidation, code, value)
		}
		if rate < 0 || rate >= 100 {
			return fmt.Errorf("%w: rate %s out of range [0, 100): %q", domain.ErrValidation, code, value)
		}
	}
	return nil
}

func buildChangeLogs(price *domain.SettlementPrice, changeType domain.ChangeType, changes []fieldChange, batchID string, operator domain.Operator) []*domain.PriceChangeLog {
	now := time.Now()
	source := operator.Source
	if source == "" {
		source = "PC"
	}

	logs := make([]*domain.PriceChangeLog, len(changes))
	for i, change := range changes {
		channelID := price.ChannelID
		logs[i] = &domain.PriceChangeLog{
			AgentID:       price.AgentID,
			ChannelID:     &channelID,
			ChangeType:    changeType,
			ConfigType:    domain.ConfigTypeSettlement,
			FieldName:     change.field,
			OldValue:      change.oldValue,
			NewValue:      change.newValue,
			ChangeSummary: fmt.Sprintf("%s: %q -> %q", change.field, change.oldValue, change.newValue),
			BatchID:       batchID,
			OperatorID:    operator.ID,
			OperatorName:  operator.Name,
			Source:        source,
			IPAddress:     operator.IP,
			CreatedAt:     now,
		}
	}
	return logs
}

// commitUpdate persists the updated price with version+1 and one audit row
// per changed field, all conditioned on the version the caller loaded.
func (uc *DefaultSettlementUsecase) commitUpdate(current *domain.SettlementPrice, updated domain.SettlementPrice, changeType domain.ChangeType, changes []fieldChange, operator domain.Operator) (*domain.SettlementPrice, error) {
	batchID, err := newBatchID()
	if err != nil {
		return nil, err
	}

	updated.Version = current.Version + 1
	if operator.ID != 0 {
		operatorID := operator.ID
		updated.UpdatedBy = &operatorID
	}

	logs := buildChangeLogs(current, changeType, changes, batchID, operator)
	if err := uc.priceRepo.UpdateSettlementPrice(&updated, current.Version, logs); err != nil {
		if errors.Is(err, domain.ErrStaleVersion) && uc.metrics != nil {
			uc.metrics.RecordVersionConflict("settlement_price")
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordPriceUpdate(domain.ChangeTypeName(changeType))
	}
	uc.publishChange(&updated, changeType, batchID, changes, operator)
	return &updated, nil
}

func (uc *DefaultSettlementUsecase) publishChange(price *domain.SettlementPrice, changeType domain.ChangeType, batchID string, changes []fieldChange, operator domain.Operator) {
	if uc.kafkaPublisher == nil {
		return
	}
	changedFields := make([]string, len(changes))
	for i, change := range changes {
		changedFields[i] = change.field
	}
	go func(event publisher.PriceChangeEvent) {
		if err := uc.kafkaPublisher.PublishPriceChange(event); err != nil {
			slog.Error("failed to publish price change event",
				"settlement_price_id", event.SettlementPriceID, "error", err.Error())
		}
	}(publisher.PriceChangeEvent{
		EventID:           uuid.NewString(),
		SettlementPriceID: price.ID,
		AgentID:           price.AgentID,
		ChannelID:         price.ChannelID,
		ChangeType:        domain.ChangeTypeName(changeType),
		Version:           price.Version,
		BatchID:           batchID,
		ChangedFields:     changedFields,
		OperatorName:      operator.Name,
		CreatedAt:         time.Now(),
	})
}
