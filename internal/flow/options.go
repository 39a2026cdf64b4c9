package flow

// ChoiceOptions is the partial option set stored on a choice input.
// Nil fields fall back to DefaultChoiceConfig.
type ChoiceOptions struct {
	IsMultipleChoice *bool `json:"isMultipleChoice,omitempty"`
}

// ChoiceConfig is a fully resolved ChoiceOptions.
type ChoiceConfig struct {
	IsMultipleChoice bool
}

var DefaultChoiceConfig = ChoiceConfig{IsMultipleChoice: false}

// Resolve merges o over DefaultChoiceConfig. A nil receiver yields the defaults.
func (o *ChoiceOptions) Resolve() ChoiceConfig {
	cfg := DefaultChoiceConfig
	if o == nil {
		return cfg
	}
	if o.IsMultipleChoice != nil {
		cfg.IsMultipleChoice = *o.IsMultipleChoice
	}
	return cfg
}

type PictureChoiceOptions struct {
	IsMultipleChoice *bool `json:"isMultipleChoice,omitempty"`
}

type PictureChoiceConfig struct {
	IsMultipleChoice bool
}

var DefaultPictureChoiceConfig = PictureChoiceConfig{IsMultipleChoice: false}

func (o *PictureChoiceOptions) Resolve() PictureChoiceConfig {
	cfg := DefaultPictureChoiceConfig
	if o == nil {
		return cfg
	}
	if o.IsMultipleChoice != nil {
		cfg.IsMultipleChoice = *o.IsMultipleChoice
	}
	return cfg
}

// SystemMessages carries per-bot overrides of the labels the bridge writes
// on its own behalf.
type SystemMessages struct {
	WhatsAppPictureChoiceSelectLabel *string `json:"whatsAppPictureChoiceSelectLabel,omitempty"`
}

type SystemMessageConfig struct {
	WhatsAppPictureChoiceSelectLabel string
}

var DefaultSystemMessages = SystemMessageConfig{
	WhatsAppPictureChoiceSelectLabel: "Select",
}

func (m *SystemMessages) Resolve() SystemMessageConfig {
	cfg := DefaultSystemMessages
	if m == nil {
		return cfg
	}
	if m.WhatsAppPictureChoiceSelectLabel != nil {
		cfg.WhatsAppPictureChoiceSelectLabel = *m.WhatsAppPictureChoiceSelectLabel
	}
	return cfg
}
