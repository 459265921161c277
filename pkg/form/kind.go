// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package form

// 📦 Kind is one of the fixed asset files kept for each form
type Kind int

const (
	KindDefinition Kind = iota
	KindTranslation
	KindCSS
	KindPDFCSS
	KindImportXSLT
)

// Kinds lists every asset kind in the order they are fetched
var Kinds = []Kind{
	KindDefinition,
	KindTranslation,
	KindCSS,
	KindPDFCSS,
	KindImportXSLT,
}

type kindInfo struct {
	name    string
	suffix  string
	segment string
}

var kindTable = map[Kind]kindInfo{
	KindDefinition:  {name: "definition", suffix: "_definition.xml", segment: "form_xml"},
	KindTranslation: {name: "translation", suffix: "_translation.xml", segment: "form_translation"},
	KindCSS:         {name: "css", suffix: "_form.css", segment: "form_css"},
	KindPDFCSS:      {name: "pdfCss", suffix: "_pdf.css", segment: "form_pdf_css"},
	KindImportXSLT:  {name: "importXslt", suffix: "_import.xslt", segment: "form_import_xslt"},
}

// String returns the asset kind name
func (k Kind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "unknown"
}

// Suffix returns the local file name suffix
func (k Kind) Suffix() string {
	return kindTable[k].suffix
}

// Segment returns the remote control segment used in download URLs
func (k Kind) Segment() string {
	return kindTable[k].segment
}
