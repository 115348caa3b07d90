package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyUsername          = "username"
	KeyPassword          = "password"
	KeyIPAddress         = "ip_address"
	KeyDeviceType        = "device_type"
	KeyKnownDevices      = "known_devices"
	KeyGetDeviceGroups   = "get_device_groups"
	KeyShowPreRules      = "show_pre_rules"
	KeyCheckJobs         = "check_jobs"
	KeyDeviceGroups      = "device_groups"
	KeyPreRules          = "pre_rules"
	KeyJobs              = "jobs"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyOK                = "ok"
	KeyVerifyTLS         = "verify_tls"
	KeyTimeoutSeconds    = "timeout_seconds"
	KeyInventoryFile     = "inventory_file"
	KeySettingsSaved     = "settings_saved"
	KeyInputErrorTitle   = "input_error_title"
	KeySelectErrorTitle  = "selection_error_title"
	KeyConnectErrorTitle = "connection_error_title"
	KeyErrorTitle        = "error_title"
	KeyMissingFields     = "missing_fields"
	KeyNotPanorama       = "not_panorama"
	KeyNoDeviceGroup     = "no_device_group"
	KeyFailedConnect     = "failed_connect"
	KeyFailedGroups      = "failed_device_groups"
	KeyFailedPreRules    = "failed_pre_rules"
	KeyFailedJobs        = "failed_jobs"
	KeyGroupsLoaded      = "groups_loaded"
	KeyRulesLoaded       = "rules_loaded"
	KeyJobsLoaded        = "jobs_loaded"
	KeyInventoryFailed   = "inventory_failed"
	KeyAddToInventory    = "add_to_inventory"
	KeyHostRequired      = "host_required"
	KeyInventorySaved    = "inventory_saved"
	KeyInventorySaveErr  = "inventory_save_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Palo Alto Firewall Manager",
		KeyUsername:          "Username:",
		KeyPassword:          "Password:",
		KeyIPAddress:         "IP Address:",
		KeyDeviceType:        "Device Type:",
		KeyKnownDevices:      "Known Devices:",
		KeyGetDeviceGroups:   "Get Device Groups",
		KeyShowPreRules:      "Show Pre-Rules",
		KeyCheckJobs:         "Check Jobs",
		KeyDeviceGroups:      "Device Groups",
		KeyPreRules:          "Pre-Rules",
		KeyJobs:              "Jobs",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyOK:                "OK",
		KeyVerifyTLS:         "Verify device certificates",
		KeyTimeoutSeconds:    "Request Timeout (seconds)",
		KeyInventoryFile:     "Device Inventory (CSV)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInputErrorTitle:   "Input Error",
		KeySelectErrorTitle:  "Selection Error",
		KeyConnectErrorTitle: "Connection Error",
		KeyErrorTitle:        "Error",
		KeyMissingFields:     "All fields (Username, Password, IP Address) must be filled out.",
		KeyNotPanorama:       "Device groups can only be retrieved from Panorama.",
		KeyNoDeviceGroup:     "No device group selected.",
		KeyFailedConnect:     "Failed to connect: %v",
		KeyFailedGroups:      "Failed to get device groups: %v",
		KeyFailedPreRules:    "Failed to get pre-rules: %v",
		KeyFailedJobs:        "Failed to check jobs: %v",
		KeyGroupsLoaded:      "Loaded %d device groups",
		KeyRulesLoaded:       "Loaded %d pre-rules from %s",
		KeyJobsLoaded:        "Job status refreshed",
		KeyInventoryFailed:   "Could not load device inventory: %v",
		KeyAddToInventory:    "Add Device to Inventory",
		KeyHostRequired:      "Enter an IP address to add it to the inventory.",
		KeyInventorySaved:    "Saved %s to %s",
		KeyInventorySaveErr:  "Could not save device inventory: %v",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Менеджер межсетевых экранов Palo Alto",
		KeyUsername:          "Пользователь:",
		KeyPassword:          "Пароль:",
		KeyIPAddress:         "IP-адрес:",
		KeyDeviceType:        "Тип устройства:",
		KeyKnownDevices:      "Известные устройства:",
		KeyGetDeviceGroups:   "Получить группы устройств",
		KeyShowPreRules:      "Показать pre-правила",
		KeyCheckJobs:         "Проверить задачи",
		KeyDeviceGroups:      "Группы устройств",
		KeyPreRules:          "Pre-правила",
		KeyJobs:              "Задачи",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyOK:                "ОК",
		KeyVerifyTLS:         "Проверять сертификаты устройств",
		KeyTimeoutSeconds:    "Тайм-аут запроса (секунды)",
		KeyInventoryFile:     "Список устройств (CSV)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInputErrorTitle:   "Ошибка ввода",
		KeySelectErrorTitle:  "Ошибка выбора",
		KeyConnectErrorTitle: "Ошибка подключения",
		KeyErrorTitle:        "Ошибка",
		KeyMissingFields:     "Все поля (пользователь, пароль, IP-адрес) должны быть заполнены.",
		KeyNotPanorama:       "Группы устройств можно получить только с Panorama.",
		KeyNoDeviceGroup:     "Группа устройств не выбрана.",
		KeyFailedConnect:     "Не удалось подключиться: %v",
		KeyFailedGroups:      "Не удалось получить группы устройств: %v",
		KeyFailedPreRules:    "Не удалось получить pre-правила: %v",
		KeyFailedJobs:        "Не удалось проверить задачи: %v",
		KeyGroupsLoaded:      "Загружено групп устройств: %d",
		KeyRulesLoaded:       "Загружено %d pre-правил из %s",
		KeyJobsLoaded:        "Состояние задач обновлено",
		KeyInventoryFailed:   "Не удалось загрузить список устройств: %v",
		KeyAddToInventory:    "Добавить устройство в список",
		KeyHostRequired:      "Укажите IP-адрес, чтобы добавить устройство в список.",
		KeyInventorySaved:    "%s сохранён в %s",
		KeyInventorySaveErr:  "Не удалось сохранить список устройств: %v",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerenciador de Firewalls Palo Alto",
		KeyUsername:          "Usuário:",
		KeyPassword:          "Senha:",
		KeyIPAddress:         "Endereço IP:",
		KeyDeviceType:        "Tipo de Dispositivo:",
		KeyKnownDevices:      "Dispositivos Conhecidos:",
		KeyGetDeviceGroups:   "Obter Grupos de Dispositivos",
		KeyShowPreRules:      "Mostrar Pré-Regras",
		KeyCheckJobs:         "Verificar Tarefas",
		KeyDeviceGroups:      "Grupos de Dispositivos",
		KeyPreRules:          "Pré-Regras",
		KeyJobs:              "Tarefas",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyOK:                "OK",
		KeyVerifyTLS:         "Verificar certificados dos dispositivos",
		KeyTimeoutSeconds:    "Tempo Limite da Requisição (segundos)",
		KeyInventoryFile:     "Inventário de Dispositivos (CSV)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInputErrorTitle:   "Erro de Entrada",
		KeySelectErrorTitle:  "Erro de Seleção",
		KeyConnectErrorTitle: "Erro de Conexão",
		KeyErrorTitle:        "Erro",
		KeyMissingFields:     "Todos os campos (Usuário, Senha, Endereço IP) devem ser preenchidos.",
		KeyNotPanorama:       "Grupos de dispositivos só podem ser obtidos do Panorama.",
		KeyNoDeviceGroup:     "Nenhum grupo de dispositivos selecionado.",
		KeyFailedConnect:     "Falha ao conectar: %v",
		KeyFailedGroups:      "Falha ao obter grupos de dispositivos: %v",
		KeyFailedPreRules:    "Falha ao obter pré-regras: %v",
		KeyFailedJobs:        "Falha ao verificar tarefas: %v",
		KeyGroupsLoaded:      "%d grupos de dispositivos carregados",
		KeyRulesLoaded:       "%d pré-regras carregadas de %s",
		KeyJobsLoaded:        "Status das tarefas atualizado",
		KeyInventoryFailed:   "Não foi possível carregar o inventário: %v",
		KeyAddToInventory:    "Adicionar dispositivo ao inventário",
		KeyHostRequired:      "Informe um endereço IP para adicioná-lo ao inventário.",
		KeyInventorySaved:    "%s salvo em %s",
		KeyInventorySaveErr:  "Não foi possível salvar o inventário: %v",
	}
}
