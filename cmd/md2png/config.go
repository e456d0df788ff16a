package main

// runConfig prints the effective configuration: the named config file, or
// the defaults, with environment variables applied.
func runConfig(args []string, env *Environment) error {
	name, err := parseConfigFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(name, loadEnvConfig(env.Getenv))
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
