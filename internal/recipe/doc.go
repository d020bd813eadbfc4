// Package recipe defines the single hand-authored text patch applied to an
// installed library header: where the header lives, the marker that proves the
// patch is present, the preprocessor guard it anchors on and the lines it
// inserts. Recipes are YAML documents validated against an embedded JSON
// schema; the built-in recipe fixes I2C_BUFFER_LENGTH redefinition in the
// SparkFun MAX3010x driver on ESP32.
package recipe
