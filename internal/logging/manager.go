package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// LoggerManager хранит по одному логгеру на компонент и закрывает их разом
type LoggerManager struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает общий для процесса менеджер
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager()
	})
	return globalManager
}

// NewLoggerManager создаёт пустой менеджер
func NewLoggerManager() *LoggerManager {
	return &LoggerManager{loggers: make(map[string]*Logger)}
}

// GetLogger возвращает логгер компонента; первый вызов создаёт его
// с текущими параметрами Configure.
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l, nil
	}
	l, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("логгер %s: %w", component, err)
	}
	lm.loggers[component] = l
	return l, nil
}

// MustGetLogger не возвращает ошибку: если файл логов открыть не удалось,
// компонент пишет в консоль глобального логгера.
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	if l, err := lm.GetLogger(component); err == nil {
		return l
	}
	return &Logger{
		component:       component,
		consoleLogger:   getDefault().consoleLogger,
		minConsoleLevel: INFO,
		minFileLevel:    ERROR + 1,
	}
}

// CloseAll закрывает файлы всех логгеров и забывает компоненты
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for component, l := range lm.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("логгер %s: %w", component, err))
		}
	}
	clear(lm.loggers)
	return errors.Join(errs...)
}

// ListComponents — имена компонентов по алфавиту
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	names := make([]string, 0, len(lm.loggers))
	for name := range lm.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLogLevel меняет пороги уже созданного логгера.
// Вызывать до того, как компонент начнёт писать из других горутин.
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, ok := lm.loggers[component]
	if !ok {
		return fmt.Errorf("компонент %s не зарегистрирован", component)
	}
	l.minConsoleLevel, l.minFileLevel = consoleLevel, fileLevel
	return nil
}

// GetComponentLogger — логгер компонента из общего менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetWorldLogger() *Logger { return GetComponentLogger("world") }

func GetAPILogger() *Logger { return GetComponentLogger("api") }
