package wxparams

import (
	"bytes"
	"strconv"
)

// CSV形式
//
// Derive を呼ぶ前の場合は観測値の列のみを出力します。
func (s *Series) ToCSV(buf *bytes.Buffer) {
	derived := s.WSPD != nil && s.RH != nil

	buf.WriteString("date")
	buf.WriteString(",TMP")
	buf.WriteString(",DT")
	buf.WriteString(",PRES")
	buf.WriteString(",UGRD")
	buf.WriteString(",VGRD")
	if derived {
		buf.WriteString(",w_spd")
		buf.WriteString(",w_dir")
		buf.WriteString(",w_dir16")
		buf.WriteString(",RH")
		buf.WriteString(",Pw")
		buf.WriteString(",MR")
		buf.WriteString(",VT")
		buf.WriteString(",THETA")
		buf.WriteString(",EPT")
		buf.WriteString(",PRMSL")
	}
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(s.date); i++ {
		buf.WriteString(s.date[i].Format("2006-01-02 15:04:05"))
		writeFloat(s.TMP[i])
		writeFloat(s.DT[i])
		writeFloat(s.PRES[i])
		writeFloat(s.UGRD[i])
		writeFloat(s.VGRD[i])
		if derived {
			writeFloat(s.WSPD[i])
			writeFloat(s.WDIR[i])
			buf.WriteString(",")
			buf.WriteString(DegToDir16(s.WDIR[i], "CALM"))
			writeFloat(s.RH[i])
			writeFloat(s.Pw[i])
			writeFloat(s.MR[i])
			writeFloat(s.VT[i])
			writeFloat(s.THETA[i])
			writeFloat(s.EPT[i])
			writeFloat(s.PRMSL[i])
		}
		buf.WriteString("\n")
	}
}
