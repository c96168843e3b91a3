package skeleton

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFeature is returned for feature ids outside the catalogue.
var ErrUnknownFeature = errors.New("unknown feature")

// optionalOrder is the fixed order in which optional templates are applied.
var optionalOrder = []Feature{FeatureRedux, FeatureToastify}

// FeatureInfo describes an optional feature for listings.
type FeatureInfo struct {
	ID          Feature
	Title       string
	Description string
}

var catalogue = []FeatureInfo{
	{
		ID:          FeatureRedux,
		Title:       "Redux",
		Description: "redux/ store with thunk middleware and devtools, Provider wrapper in index.js",
	},
	{
		ID:          FeatureToastify,
		Title:       "Toastify",
		Description: "components/AlertMsg.js toast container rendered from App.js",
	},
}

// Features lists the optional features in application order.
func Features() []FeatureInfo {
	out := make([]FeatureInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// ParseFeature maps a user-supplied id to a known optional feature.
func ParseFeature(s string) (Feature, error) {
	f := Feature(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range optionalOrder {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFeature, s)
}

// Build returns the template contributed by one feature. A feature template may
// reuse directory names from the baseline; those are merged when materialized.
func Build(feature Feature, flags Flags) (Template, error) {
	switch feature {
	case FeatureBaseline:
		return Baseline(flags), nil
	case FeatureRedux:
		return reduxTemplate(), nil
	case FeatureToastify:
		return toastifyTemplate(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFeature, feature)
	}
}

// Selection pairs a feature with its built template.
type Selection struct {
	Feature  Feature
	Template Template
}

// Select builds the baseline followed by every enabled feature, in fixed order.
func Select(flags Flags) []Selection {
	out := []Selection{{Feature: FeatureBaseline, Template: Baseline(flags)}}
	for _, f := range flags.Features() {
		// Build cannot fail for ids taken from optionalOrder.
		t, _ := Build(f, flags)
		out = append(out, Selection{Feature: f, Template: t})
	}
	return out
}

func reduxTemplate() Template {
	return Template{
		Dir{Name: "redux", Children: Template{
			Dir{Name: "actions"},
			Dir{Name: "constants"},
			Dir{Name: "reducers", Children: Template{
				File{Name: "index.js", Content: reducersIndexJS},
			}},
			File{Name: "store.js", Content: storeJS},
		}},
	}
}

func toastifyTemplate() Template {
	return Template{
		Dir{Name: "components", Children: Template{
			File{Name: "AlertMsg.js", Content: alertMsgJS},
		}},
	}
}

const reducersIndexJS = `import { combineReducers } from "redux";

export default combineReducers({});
`

const storeJS = `import { createStore, applyMiddleware } from "redux";
import { composeWithDevTools } from "redux-devtools-extension";
import thunk from "redux-thunk";
import rootReducer from "./reducers";

const initialState = {};
const store = createStore(
  rootReducer,
  initialState,
  composeWithDevTools(applyMiddleware(thunk))
);

export default store;
`

const alertMsgJS = `import React from "react";
import { ToastContainer } from "react-toastify";
import "react-toastify/dist/ReactToastify.css";

const AlertMsg = () => {
  return (
    <ToastContainer
      position="top-right"
      hideProgressBar={false}
      newestOnTop={true}
      pauseOnHover
    />
  );
};

export default AlertMsg;
`
