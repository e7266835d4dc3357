// Package config loads settings for a conversion run.
//
// Sources are applied in this order, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. An optional YAML file
//  3. A .env file in the working directory, if present
//  4. Environment variables prefixed with SCHOOL_TRANSFORM_
//
// Environment variable names follow the struct layout, for example
// SCHOOL_TRANSFORM_SCHOOL_NAME, SCHOOL_TRANSFORM_FLAT_HAS_HEADER and
// SCHOOL_TRANSFORM_LOGGING_LEVEL.
package config
