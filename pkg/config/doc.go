// Package config loads typed configuration structs from environment
// variables using caarlos0/env tags, with optional .env support via
// joho/godotenv. Each package of the application owns its own Config struct;
// the server's composition root loads them all through Load.
package config
