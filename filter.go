// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdf

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"io"

	"github.com/kestrel-data/pdflex/logger"
)

// filterSpec pairs a filter name with its (possibly absent) decode
// parameters, mirroring original_source's streams.rs Filter struct.
type filterSpec struct {
	name   NameID
	parms  Dictionary
	hasDec bool
}

// filters reads /Filter and /DecodeParms off a stream dictionary.
// /DecodeParms is ignored when /Filter is absent and may be absent when
// /Filter is present; when both are present their shapes must agree (a
// dictionary for a single name, an array of matching length for an
// array of names).
func filters(dict Dictionary) ([]filterSpec, error) {
	filterObj, hasFilter := dict[NameFilter]
	parmsObj, hasParms := dict[NameDecodeParms]

	if !hasFilter {
		return nil, nil
	}

	switch filterObj.Kind {
	case ObjName:
		fs := filterSpec{name: filterObj.Name}
		if hasParms {
			if parmsObj.Kind != ObjDictionary {
				return nil, newErr(InvalidPdf, "invalid stream dictionary")
			}
			fs.parms, fs.hasDec = parmsObj.Dict, true
		}
		return []filterSpec{fs}, nil

	case ObjArray:
		names := filterObj.Array
		var parmsArr []Object
		if hasParms {
			if parmsObj.Kind != ObjArray || len(parmsObj.Array) != len(names) {
				return nil, newErr(InvalidPdf, "invalid stream dictionary")
			}
			parmsArr = parmsObj.Array
		}
		out := make([]filterSpec, len(names))
		for i, n := range names {
			if n.Kind != ObjName {
				return nil, newErr(InvalidPdf, "invalid stream dictionary")
			}
			out[i] = filterSpec{name: n.Name}
			if parmsArr != nil && parmsArr[i].Kind == ObjDictionary {
				out[i].parms, out[i].hasDec = parmsArr[i].Dict, true
			}
		}
		return out, nil

	default:
		return nil, newErr(InvalidPdf, "invalid stream dictionary")
	}
}

// decodeStream applies the filter chain named by dict to raw, in
// left-to-right order.
func decodeStream(raw []byte, dict Dictionary) ([]byte, error) {
	specs, err := filters(dict)
	if err != nil {
		return nil, err
	}
	data := raw
	for _, fs := range specs {
		data, err = applyFilter(fs, data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func applyFilter(fs filterSpec, data []byte) ([]byte, error) {
	switch fs.name {
	case NameFlateDecode:
		out, err := inflateZlib(data)
		if err != nil {
			return nil, wrapErr(DecompressionError, "flate", err)
		}
		return applyPredictor(fs, out)
	case NameASCII85Decode:
		out, err := decodeASCII85(data)
		if err != nil {
			return nil, wrapErr(DecompressionError, "ascii85", err)
		}
		return out, nil
	case NameASCIIHexDecode, NameLZWDecode, NameRunLengthDecode,
		NameCCITTFaxDecode, NameJBIG2Decode, NameDCTDecode, NameCrypt:
		return nil, newErr(InternalError, fs.name.String()+" filter not implemented")
	default:
		return nil, newErr(InvalidPdf, "unknown filter")
	}
}

func inflateZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("stream decoder: flate", "bytes", len(out))
	return out, nil
}

func decodeASCII85(data []byte) ([]byte, error) {
	data = bytes.TrimSuffix(bytes.TrimSpace(data), []byte("~>"))
	dst := make([]byte, len(data))
	n, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// applyPredictor applies the PNG "Up" predictor (/Predictor 12) when
// /DecodeParms names one. Absent or Predictor==1 leaves the stream
// unmodified, matching spec.md's required plain-Flate behavior.
func applyPredictor(fs filterSpec, data []byte) ([]byte, error) {
	if !fs.hasDec {
		return data, nil
	}
	predictor, _ := fs.parms.WantI32(NamePredictor)
	if predictor <= 1 {
		return data, nil
	}
	if predictor != 12 {
		return nil, newErr(InternalError, "predictor not implemented")
	}
	colors, ok := fs.parms.WantI32(NameColors)
	if !ok {
		colors = 1
	}
	bpc, ok := fs.parms.WantI32(NameBitsPerComponent)
	if !ok {
		bpc = 8
	}
	columns, _ := fs.parms.WantI32(NameColumns)
	if columns == 0 {
		columns = 1
	}
	bpp := (int(colors)*int(bpc) + 7) / 8
	if bpp < 1 {
		bpp = 1
	}
	rowBytes := (int(colors)*int(bpc)*int(columns) + 7) / 8
	return pngUp(data, rowBytes, bpp)
}

// pngUp reverses the PNG "Up" filter: each row is the byte-wise sum of
// the unfiltered bytes and the corresponding byte of the previous row,
// preceded by a one-byte filter-type tag we drop after checking it.
func pngUp(data []byte, rowBytes, bpp int) ([]byte, error) {
	_ = bpp
	stride := rowBytes + 1
	if stride <= 0 || len(data)%stride != 0 {
		return nil, newErr(DecompressionError, "malformed predictor rows")
	}
	rows := len(data) / stride
	out := make([]byte, rows*rowBytes)
	prev := make([]byte, rowBytes)
	for r := 0; r < rows; r++ {
		rowStart := r * stride
		tag := data[rowStart]
		row := data[rowStart+1 : rowStart+stride]
		dst := out[r*rowBytes : (r+1)*rowBytes]
		switch tag {
		case 2: // Up
			for i := range row {
				dst[i] = row[i] + prev[i]
			}
		case 0: // None
			copy(dst, row)
		default:
			return nil, newErr(InternalError, "predictor filter type not implemented")
		}
		copy(prev, dst)
	}
	return out, nil
}
