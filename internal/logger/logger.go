package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

var (
	isDebug = false

	CritColor    = color.RGB(255, 0, 0).SprintFunc()
	DebugColor   = color.RGB(255, 165, 0).SprintFunc()
	WarningColor = color.RGB(255, 255, 0).SprintFunc()
	EventColor   = color.RGB(0, 255, 0).SprintFunc()

	// подменяется в тестах, чтобы Crit не завершал процесс
	exit = os.Exit
)

type (
	loggerConfig struct {
		Logging *struct {
			// сохранять ли логи в файл
			Enabled bool `yaml:"enabled"`
			// папка для логов, по умолчанию "./log"
			Directory string `yaml:"directory"`
			// формат даты и времени в имени файла
			FilenameFormat string `yaml:"filename_format"`
		} `yaml:"logging"`

		Color *struct {
			// отключить все цвета
			NoColor bool `yaml:"no_color"`

			Crit    colorConf `yaml:"crit"`
			Debug   colorConf `yaml:"debug"`
			Warning colorConf `yaml:"warning"`
			Event   colorConf `yaml:"event"`
		} `yaml:"color"`
	}

	colorConf struct {
		Enabled bool    `yaml:"enabled"`
		Rgb     *[3]int `yaml:"rgb"`
	}
)

// InitLogger настраивает вывод логов. Возвращает открытый файл логов, если запись в файл включена.
func InitLogger(debug bool, configPath string) *os.File {
	isDebug = debug
	color.NoColor = true

	log.SetPrefix("[NAVBOT] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)

	if configPath == "" {
		return nil
	}

	input, err := os.Open(configPath)
	if err != nil {
		Info("Настройки для логов не найдены:", configPath)
		return nil
	}
	defer input.Close()

	cnf := &loggerConfig{}
	if err := yaml.NewDecoder(input).Decode(cnf); err != nil {
		Warning("Ошибка загрузки настроек для логов", err)
		return nil
	}

	if cnf.Color != nil && !cnf.Color.NoColor {
		color.NoColor = false

		setColorCnf := func(cData colorConf, globColor *func(a ...interface{}) string) {
			if !cData.Enabled {
				d := new(color.Color)
				d.DisableColor()
				*globColor = d.SprintFunc()
				return
			}
			if cData.Rgb != nil {
				*globColor = color.RGB((*cData.Rgb)[0], (*cData.Rgb)[1], (*cData.Rgb)[2]).SprintFunc()
			}
		}

		setColorCnf(cnf.Color.Crit, &CritColor)
		setColorCnf(cnf.Color.Debug, &DebugColor)
		setColorCnf(cnf.Color.Warning, &WarningColor)
		setColorCnf(cnf.Color.Event, &EventColor)
	}

	if cnf.Logging == nil || !cnf.Logging.Enabled {
		return nil
	}

	if cnf.Logging.Directory == "" {
		cnf.Logging.Directory = "./log"
	}
	if cnf.Logging.FilenameFormat == "" {
		cnf.Logging.FilenameFormat = "navbot"
	}

	if err := os.MkdirAll(cnf.Logging.Directory, 0o755); err != nil {
		Warning("Не удалось создать папку для логов:", err)
		return nil
	}

	fileName := filepath.Join(cnf.Logging.Directory, time.Now().Format(cnf.Logging.FilenameFormat)+".log")
	logFile, err := os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o666)
	if err != nil {
		Warning("Ошибка связанная с файлом записи логов, в данный момент логи не сохраняются:", err)
		return nil
	}
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))

	return logFile
}

func IsDebug() bool {
	return isDebug
}

func Info(v ...interface{}) {
	log.Print("[INFO] ", fmt.Sprintln(v...))
}

func Event(v ...interface{}) {
	log.Print(EventColor("[EVENT] ", fmt.Sprintln(v...)))
}

func Warning(v ...interface{}) {
	log.Print(WarningColor("[WARNING] ", fmt.Sprintln(v...)))
}

func Debug(v ...interface{}) {
	if !isDebug {
		return
	}

	message := new(bytes.Buffer)
	for _, item := range v {
		switch value := item.(type) {
		case string:
			_, _ = fmt.Fprintf(message, "%s ", value)
		case []byte:
			_, _ = fmt.Fprintf(message, "%s ", string(value))
		case error:
			_, _ = fmt.Fprintf(message, "%s ", value.Error())
		default:
			s, _ := json.MarshalIndent(value, "", " ")
			_, _ = fmt.Fprintf(message, "%s ", string(s))
		}
	}

	log.Print(DebugColor("[DEBUG] ", message))
}

func Crit(v ...interface{}) {
	log.Print(CritColor("Critical error: ", fmt.Sprintln(v...)))
	time.Sleep(time.Second)
	exit(1)
}
