package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"staffdir/inner/common"

	"go.uber.org/zap"
)

// Service одноразово загружает внешний справочник городов
// и проецирует его в отсортированный список уникальных стран.
// Любой сбой загрузки подменяется встроенным списком.
type Service struct {
	url    string
	client *http.Client
	logger *common.Logger

	mu        sync.RWMutex
	countries []string
}

// запись справочника world-cities; нужен только столбец country
type cityRecord struct {
	Country string `json:"country"`
}

// функция-конструктор
func NewService(cfg common.Config, logger *common.Logger) *Service {
	return &Service{
		url: cfg.CountriesUrl,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger:    logger,
		countries: DefaultCountries(),
	}
}

// Load выполняет загрузку справочника. Ошибка сети или разбора
// не поднимается наружу: остаётся список по умолчанию.
func (svc *Service) Load(ctx context.Context) {
	fetched, err := svc.fetch(ctx)
	if err != nil {
		svc.logger.Warn("failed to load countries, using fallback list",
			zap.String("url", svc.url),
			zap.Error(err))
		return
	}

	svc.mu.Lock()
	svc.countries = fetched
	svc.mu.Unlock()
	svc.logger.Info("countries loaded", zap.Int("count", len(fetched)))
}

func (svc *Service) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating countries request: %w", err)
	}

	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching countries: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected countries response status: %d", resp.StatusCode)
	}

	var cities []cityRecord
	if err := json.NewDecoder(resp.Body).Decode(&cities); err != nil {
		return nil, fmt.Errorf("error decoding countries response: %w", err)
	}

	// уникальные непустые страны в алфавитном порядке
	seen := make(map[string]struct{}, len(cities))
	var result []string
	for _, city := range cities {
		name := strings.TrimSpace(city.Country)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

// Countries текущий список стран
func (svc *Service) Countries() []string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	result := make([]string, len(svc.countries))
	copy(result, svc.countries)
	return result
}
