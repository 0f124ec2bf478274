package config

// Config is the root configuration shared by the lexcore commands.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Cleaner CleanerConfig `yaml:"cleaner"`
	Tagger  TaggerConfig  `yaml:"tagger"`
	Core    CoreConfig    `yaml:"core"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CleanerConfig holds dictionary cleaner settings.
type CleanerConfig struct {
	InputDir        string   `yaml:"input_dir"         env:"CLEANER_INPUT_DIR"         env-default:"dict"`
	OutputDir       string   `yaml:"output_dir"        env:"CLEANER_OUTPUT_DIR"        env-default:"cleaned"`
	Letters         []string `yaml:"letters"           env:"CLEANER_LETTERS"           env-separator:","`
	Lemmatize       bool     `yaml:"lemmatize"         env:"CLEANER_LEMMATIZE"         env-default:"false"`
	Normalizer      string   `yaml:"normalizer"        env:"CLEANER_NORMALIZER"        env-default:"lemma"`
	WordNetDir      string   `yaml:"wordnet_dir"       env:"CLEANER_WORDNET_DIR"`
	ContinueOnError bool     `yaml:"continue_on_error" env:"CLEANER_CONTINUE_ON_ERROR" env-default:"false"`
}

// TaggerConfig holds sense tagger settings.
type TaggerConfig struct {
	WordNetDir    string   `yaml:"wordnet_dir"    env:"TAGGER_WORDNET_DIR"    env-default:"oewn"`
	Output        string   `yaml:"output"         env:"TAGGER_OUTPUT"         env-default:"wordnet/wn.json"`
	Tokenizer     string   `yaml:"tokenizer"      env:"TAGGER_TOKENIZER"      env-default:"treebank"`
	POS           []string `yaml:"pos"            env:"TAGGER_POS"            env-separator:","`
	Limit         int      `yaml:"limit"          env:"TAGGER_LIMIT"          env-default:"0"`
	ProgressEvery int      `yaml:"progress_every" env:"TAGGER_PROGRESS_EVERY" env-default:"10000"`
}

// CoreConfig holds definitional-core analysis settings.
type CoreConfig struct {
	Source        string  `yaml:"source"         env:"CORE_SOURCE"         env-default:"cleaned"`
	CleanedDir    string  `yaml:"cleaned_dir"    env:"CORE_CLEANED_DIR"    env-default:"cleaned"`
	SensesFile    string  `yaml:"senses_file"    env:"CORE_SENSES_FILE"    env-default:"wordnet/wn.json"`
	WorkDir       string  `yaml:"work_dir"       env:"CORE_WORK_DIR"       env-default:"data"`
	AnnealT0      float64 `yaml:"anneal_t0"      env:"CORE_ANNEAL_T0"      env-default:"5"`
	AnnealCooling float64 `yaml:"anneal_cooling" env:"CORE_ANNEAL_COOLING" env-default:"0.0001"`
	AnnealBias    int     `yaml:"anneal_bias"    env:"CORE_ANNEAL_BIAS"    env-default:"5"`
	AnnealSeed    int64   `yaml:"anneal_seed"    env:"CORE_ANNEAL_SEED"    env-default:"1"`
}
