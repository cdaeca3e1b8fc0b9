package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anisan-cli/eprange/filesystem"
	"github.com/anisan-cli/eprange/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.IconsVariant), ShouldEqual, "plain")
			So(viper.GetInt(key.TUIItemSpacing), ShouldEqual, 1)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("tui.show_identifiers"), ShouldEqual, "tui_show_identifiers")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the catalog.default field", t, func() {
		field := Default[key.CatalogDefault]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "EPRANGE_CATALOG_DEFAULT")
		})

		Convey("MarshalJSON reports the type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.CatalogDefault)
			So(decoded["type"], ShouldEqual, "string")
			So(decoded["default"], ShouldEqual, "")
		})

		Convey("Every registered field is counted", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse converts values to the type of the default", t, func() {
		v, err := Parse(key.TUIItemSpacing, []string{"3"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 3)

		v, err = Parse(key.LogsWrite, []string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = Parse(key.CatalogDefault, []string{"show.yaml"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "show.yaml")

		_, err = Parse(key.TUIItemSpacing, []string{"wide"})
		So(err, ShouldNotBeNil)

		_, err = Parse(key.LogsWrite, nil)
		So(err, ShouldNotBeNil)

		_, err = Parse("tui.nope", []string{"1"})
		So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
	})

	Convey("File lives in the config directory", t, func() {
		So(File(), ShouldEndWith, "eprange.toml")
	})
}
