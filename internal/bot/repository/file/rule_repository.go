package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

// ruleRecord - представление реакции в файле. Необязательные поля опускаются, а не пишутся как null.
type ruleRecord struct {
	Type      string   `yaml:"type"`
	Match     string   `yaml:"match"`
	Sensitive *bool    `yaml:"sensitive,omitempty"`
	Triggers  []string `yaml:"triggers"`
	Responses []string `yaml:"responses"`
	Users     []int64  `yaml:"users,omitempty,flow"`
	Channels  []int64  `yaml:"channels,omitempty,flow"`
	Counter   *int64   `yaml:"counter,omitempty"`
}

// RuleRepository хранит реакции в памяти и после каждого изменения целиком переписывает YAML файл.
// Порядок реакций совпадает с порядком добавления и сохраняется между перезапусками.
type RuleRepository struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	names []string
	rules map[string]*models.Rule
	dirty bool
}

func NewRuleRepository(path string, logger *slog.Logger) *RuleRepository {
	return &RuleRepository{
		path:   path,
		logger: logger,
		rules:  make(map[string]*models.Rule),
	}
}

// Load читает файл. При любой ошибке хранилище остаётся пустым, а ошибка возвращается только для журнала.
func (r *RuleRepository) Load(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names = nil
	r.rules = make(map[string]*models.Rule)
	r.dirty = false

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Info("Файл реакций не найден, начинаем с пустого списка",
				"path", r.path,
			)

			return nil
		}

		return r.persistenceError(domainerrors.OpLoadRules, err)
	}

	names, rules, err := decodeRules(data)
	if err != nil {
		r.moveAside()

		return r.persistenceError(domainerrors.OpLoadRules, err)
	}

	r.names = names
	r.rules = rules
	metrics.UpdateRulesCount(len(names))

	r.logger.Info("Реакции загружены",
		"path", r.path,
		"count", len(names),
	)

	return nil
}

func (r *RuleRepository) Save(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked()
}

// Flush сохраняет изменения счётчиков, накопленные после последней записи.
func (r *RuleRepository) Flush(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return nil
	}

	return r.saveLocked()
}

func (r *RuleRepository) List(_ context.Context) ([]models.NamedRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.NamedRule, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, models.NamedRule{Name: name, Rule: r.rules[name].Clone()})
	}

	return result, nil
}

func (r *RuleRepository) Get(_ context.Context, name string) (*models.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, exists := r.rules[name]
	if !exists {
		return nil, &domainerrors.ErrRuleNotFound{Name: name}
	}

	return rule.Clone(), nil
}

func (r *RuleRepository) Add(_ context.Context, name string, rule *models.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return &domainerrors.ErrRuleAlreadyExists{Name: name}
	}

	r.rules[name] = rule.Clone()
	r.names = append(r.names, name)

	if err := r.saveLocked(); err != nil {
		delete(r.rules, name)
		r.names = r.names[:len(r.names)-1]

		return err
	}

	return nil
}

func (r *RuleRepository) Update(_ context.Context, name string, rule *models.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, exists := r.rules[name]
	if !exists {
		return &domainerrors.ErrRuleNotFound{Name: name}
	}

	r.rules[name] = rule.Clone()

	if err := r.saveLocked(); err != nil {
		r.rules[name] = previous
		return err
	}

	return nil
}

func (r *RuleRepository) Remove(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, exists := r.rules[name]
	if !exists {
		return &domainerrors.ErrRuleNotFound{Name: name}
	}

	idx := slices.Index(r.names, name)
	previousNames := slices.Clone(r.names)

	delete(r.rules, name)
	r.names = slices.Delete(r.names, idx, idx+1)

	if err := r.saveLocked(); err != nil {
		r.rules[name] = previous
		r.names = previousNames

		return err
	}

	return nil
}

// Consume уменьшает счётчик оставшихся срабатываний. Запись на диск откладывается до Flush.
func (r *RuleRepository) Consume(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, exists := r.rules[name]
	if !exists {
		return &domainerrors.ErrRuleNotFound{Name: name}
	}

	if rule.Counter == nil {
		return nil
	}

	*rule.Counter--
	r.dirty = true

	return nil
}

func (r *RuleRepository) saveLocked() error {
	data, err := encodeRules(r.names, r.rules)
	if err != nil {
		return r.persistenceError(domainerrors.OpSaveRules, err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return r.persistenceError(domainerrors.OpSaveRules, err)
	}

	r.dirty = false
	metrics.UpdateRulesCount(len(r.names))

	r.logger.Debug("Реакции сохранены",
		"path", r.path,
		"count", len(r.names),
	)

	return nil
}

// moveAside переименовывает нечитаемый файл, чтобы следующее сохранение не затёрло реакции, которые можно восстановить вручную.
func (r *RuleRepository) moveAside() {
	corruptPath := fmt.Sprintf("%s.corrupt-%s", r.path, time.Now().Format("20060102T150405"))

	if err := os.Rename(r.path, corruptPath); err != nil {
		r.logger.Error("Не удалось переименовать повреждённый файл реакций",
			"path", r.path,
			"error", err,
		)

		return
	}

	r.logger.Warn("Повреждённый файл реакций переименован",
		"path", r.path,
		"corrupt_path", corruptPath,
	)
}

func (r *RuleRepository) persistenceError(op string, cause error) error {
	r.logger.Error("Ошибка хранилища реакций",
		"operation", op,
		"path", r.path,
		"error", cause,
	)

	return &domainerrors.ErrPersistence{Operation: op, Path: r.path, Cause: cause}
}

func decodeRules(data []byte) ([]string, map[string]*models.Rule, error) {
	rules := make(map[string]*models.Rule)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, rules, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("ошибка разбора YAML: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, rules, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("ожидался словарь реакций, получен узел типа %d", mapping.Kind)
	}

	names := make([]string, 0, len(mapping.Content)/2)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		if _, exists := rules[name]; exists {
			return nil, nil, fmt.Errorf("реакция '%s' описана дважды", name)
		}

		var record ruleRecord
		if err := mapping.Content[i+1].Decode(&record); err != nil {
			return nil, nil, fmt.Errorf("ошибка разбора реакции '%s': %w", name, err)
		}

		rule, err := record.toRule()
		if err != nil {
			return nil, nil, fmt.Errorf("некорректная реакция '%s': %w", name, err)
		}

		names = append(names, name)
		rules[name] = rule
	}

	return names, rules, nil
}

func encodeRules(names []string, rules map[string]*models.Rule) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range names {
		value := &yaml.Node{}
		if err := value.Encode(fromRule(rules[name])); err != nil {
			return nil, fmt.Errorf("ошибка сериализации реакции '%s': %w", name, err)
		}

		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			value,
		)
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(mapping); err != nil {
		return nil, fmt.Errorf("ошибка сериализации YAML: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("ошибка сериализации YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func fromRule(rule *models.Rule) ruleRecord {
	return ruleRecord{
		Type:      string(rule.Kind),
		Match:     string(rule.Match),
		Sensitive: rule.Sensitive,
		Triggers:  rule.Triggers,
		Responses: rule.Responses,
		Users:     rule.Users,
		Channels:  rule.Channels,
		Counter:   rule.Counter,
	}
}

func (rec *ruleRecord) toRule() (*models.Rule, error) {
	kind, ok := models.ParseRuleKind(rec.Type)
	if !ok {
		return nil, &domainerrors.ErrInvalidValue{FieldName: "type", Value: rec.Type}
	}

	match, ok := models.ParseMatchMode(rec.Match)
	if !ok {
		return nil, &domainerrors.ErrInvalidValue{FieldName: "match", Value: rec.Match}
	}

	if len(rec.Triggers) == 0 {
		return nil, &domainerrors.ErrMissingRequiredField{FieldName: "triggers"}
	}

	if len(rec.Responses) == 0 {
		return nil, &domainerrors.ErrMissingRequiredField{FieldName: "responses"}
	}

	rule := &models.Rule{
		Kind:      kind,
		Match:     match,
		Sensitive: rec.Sensitive,
		Triggers:  rec.Triggers,
		Responses: rec.Responses,
		Users:     rec.Users,
		Channels:  rec.Channels,
		Counter:   rec.Counter,
	}

	return rule.Clone(), nil
}

// writeFileAtomic пишет во временный файл рядом с целевым и переименовывает его,
// поэтому прежняя версия файла остаётся целой при любой ошибке записи.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ошибка при создании каталога %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("ошибка при создании временного файла: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("ошибка при записи временного файла: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("ошибка при синхронизации временного файла: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ошибка при закрытии временного файла: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("ошибка при замене файла реакций: %w", err)
	}

	return nil
}
